package main

import (
	"github.com/gin-gonic/gin"

	"tienda/models"
	"tienda/pkg/crud"
	"tienda/pkg/docstore"
)

// mount wires one relational entity: gorm store + generic handler + routes.
func mount[T any](g gin.IRoutes, desc crud.Descriptor) *crud.Handler[T] {
	h := crud.NewHandler[T](crud.NewGormStore[T](db, desc), desc)
	h.Register(g)
	return h
}

func setupRoutes(r *gin.Engine) {
	r.Static("/uploads", cfg.UploadBase)

	api := r.Group("/api")
	api.POST("/auth/login", loginHandler)
	api.POST("/auth/refresh", refreshHandler)

	usuarios := crud.NewHandler[models.Usuario](crud.NewGormStore[models.Usuario](db, usuariosDesc), usuariosDesc)
	usuarios.Mutator = hashPasswordField

	// signup stays outside the gate so a first user can be created
	api.POST("/usuarios", usuarios.Create)

	auth := api.Group("")
	auth.Use(authMiddleware())

	auth.GET("/usuarios", usuarios.FindAll)
	auth.GET("/usuarios/:id", usuarios.FindByID)
	auth.PUT("/usuarios/:id", usuarios.Update)
	auth.PATCH("/usuarios/:id", usuarios.UpdateField)
	auth.DELETE("/usuarios/:id", usuarios.Delete)
	auth.POST("/usuarios/buscar", usuarios.FindByField)

	mount[models.Producto](auth, productosDesc)
	mount[models.Servicio](auth, serviciosDesc)
	mount[models.Categoria](auth, categoriasDesc)
	mount[models.Carrito](auth, carritosDesc)
	mount[models.Compra](auth, comprasDesc)
	mount[models.Reporte](auth, reportesDesc)

	auth.GET("/compras/resumen", comprasResumenHandler)

	if mongoDB != nil {
		docstore.NewHandler("mensajes", docstore.NewStore("mensajes", mensajesCollection())).Register(auth)
	}

	upload := api.Group("")
	upload.Use(uploadGate())
	upload.POST("/upload-img", uploadImgHandler)
}
