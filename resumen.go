package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda/models"
)

// comprasResumenHandler returns purchase totals grouped by month.
func comprasResumenHandler(c *gin.Context) {
	type fila struct {
		Mes   string  `json:"mes"`
		Total float64 `json:"total"`
	}
	rows, err := db.WithContext(c.Request.Context()).
		Model(&models.Compra{}).
		Select("to_char(fecha_y_hora, 'YYYY-MM') as mes, sum(total) as total").
		Group("mes").
		Order("mes").
		Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	defer rows.Close()
	filas := []fila{}
	for rows.Next() {
		var f fila
		if err := rows.Scan(&f.Mes, &f.Total); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
			return
		}
		filas = append(filas, f)
	}
	c.JSON(http.StatusOK, filas)
}
