package crud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormStore implements Store on a relational database through gorm. One
// instance per entity, sharing the process-wide *gorm.DB.
type GormStore[T any] struct {
	db   *gorm.DB
	desc Descriptor
}

func NewGormStore[T any](db *gorm.DB, desc Descriptor) *GormStore[T] {
	return &GormStore[T]{db: db, desc: desc}
}

func (s *GormStore[T]) Create(ctx context.Context, data map[string]any) (*T, error) {
	if missing := s.desc.MissingRequired(data); len(missing) > 0 {
		return nil, newMissingFields(missing)
	}
	rec, err := decodeRecord[T](data)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, &ConstraintError{Original: err.Error()}
		}
		return nil, err
	}
	return rec, nil
}

func (s *GormStore[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var rec T
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *GormStore[T]) FindAll(ctx context.Context, limit, offset int) ([]T, error) {
	q := s.db.WithContext(ctx)
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var recs []T
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *GormStore[T]) CountAll(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *GormStore[T]) Update(ctx context.Context, id uint, data map[string]any) (*T, error) {
	rec, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}
	updates, err := s.filterFields(data)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(rec).Updates(updates).Error; err != nil {
			if isUniqueConstraintError(err) {
				return nil, &ConstraintError{Original: err.Error()}
			}
			return nil, err
		}
	}
	return s.FindByID(ctx, id)
}

func (s *GormStore[T]) Delete(ctx context.Context, id uint) (bool, error) {
	rec, err := s.mustFind(ctx, id)
	if err != nil {
		return false, err
	}
	if err := s.db.WithContext(ctx).Delete(rec).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormStore[T]) UpdateField(ctx context.Context, id uint, field string, value any) (*T, error) {
	f, ok := s.desc.Field(field)
	if !ok || f.Generated {
		return nil, &InvalidFieldError{Field: field}
	}
	if f.Required && isEmpty(value) {
		return nil, newEmptyField(field)
	}
	rec, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(rec).Update(f.Name, value).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, &ConstraintError{Original: err.Error()}
		}
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *GormStore[T]) FindByField(ctx context.Context, field string, value any) ([]T, error) {
	f, ok := s.desc.Field(field)
	if !ok {
		return nil, &InvalidFieldError{Field: field}
	}
	var recs []T
	err := s.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", f.Name), value).Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *GormStore[T]) mustFind(ctx context.Context, id uint) (*T, error) {
	rec, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &NotFoundError{Entity: s.desc.Entity, ID: id}
	}
	return rec, nil
}

// filterFields keeps the keys known to the descriptor, dropping generated
// fields so primary keys and server-assigned timestamps stay immutable.
func (s *GormStore[T]) filterFields(data map[string]any) (map[string]any, error) {
	updates := make(map[string]any, len(data))
	for k, v := range data {
		f, ok := s.desc.Field(k)
		if !ok || f.Generated {
			continue
		}
		if f.Required && isEmpty(v) {
			return nil, newEmptyField(k)
		}
		updates[f.Name] = v
	}
	return updates, nil
}

// decodeRecord maps a request body onto the entity struct through its json
// tags, which carry the same names as the descriptor fields.
func decodeRecord[T any](data map[string]any) (*T, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	rec := new(T)
	if err := json.Unmarshal(raw, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
