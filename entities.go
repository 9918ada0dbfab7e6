package main

import "tienda/pkg/crud"

// Entity descriptors: the static field metadata the generic store and handler
// validate against. Names match the json tags (and columns) in models/.
// fecha_y_hora is server-assigned, so it never counts as a required input.
var (
	usuariosDesc = crud.NewDescriptor("usuarios",
		crud.Field{Name: "id", Generated: true},
		crud.Field{Name: "nombre", Required: true},
		crud.Field{Name: "apellido"},
		crud.Field{Name: "email", Required: true, Unique: true},
		crud.Field{Name: "password", Required: true},
		crud.Field{Name: "telefono"},
		crud.Field{Name: "fecha_y_hora", Required: true, HasDefault: true},
	)

	productosDesc = crud.NewDescriptor("productos",
		crud.Field{Name: "id", Generated: true},
		crud.Field{Name: "nombre", Required: true},
		crud.Field{Name: "descripcion"},
		crud.Field{Name: "precio", Required: true},
		crud.Field{Name: "stock", HasDefault: true},
		crud.Field{Name: "imagen"},
		crud.Field{Name: "categoria_id", Required: true},
		crud.Field{Name: "vendedor_id"},
		crud.Field{Name: "fecha_y_hora", Required: true, HasDefault: true},
	)

	serviciosDesc = crud.NewDescriptor("servicios",
		crud.Field{Name: "id", Generated: true},
		crud.Field{Name: "nombre", Required: true},
		crud.Field{Name: "descripcion"},
		crud.Field{Name: "precio", Required: true},
		crud.Field{Name: "imagen"},
		crud.Field{Name: "usuario_id", Required: true},
		crud.Field{Name: "fecha_y_hora", Required: true, HasDefault: true},
	)

	categoriasDesc = crud.NewDescriptor("categorias",
		crud.Field{Name: "id", Generated: true},
		crud.Field{Name: "nombre", Required: true, Unique: true},
		crud.Field{Name: "descripcion"},
	)

	carritosDesc = crud.NewDescriptor("carritos",
		crud.Field{Name: "id", Generated: true},
		crud.Field{Name: "usuario_id", Required: true},
		crud.Field{Name: "producto_id", Required: true},
		crud.Field{Name: "cantidad", Required: true},
		crud.Field{Name: "fecha_y_hora", Required: true, HasDefault: true},
	)

	comprasDesc = crud.NewDescriptor("compras",
		crud.Field{Name: "id", Generated: true},
		crud.Field{Name: "usuario_id", Required: true},
		crud.Field{Name: "producto_id", Required: true},
		crud.Field{Name: "cantidad", Required: true},
		crud.Field{Name: "total", Required: true},
		crud.Field{Name: "fecha_y_hora", Required: true, HasDefault: true},
	)

	reportesDesc = crud.NewDescriptor("reportes",
		crud.Field{Name: "id", Generated: true},
		crud.Field{Name: "usuario_id", Required: true},
		crud.Field{Name: "motivo", Required: true},
		crud.Field{Name: "descripcion"},
		crud.Field{Name: "fecha_y_hora", Required: true, HasDefault: true},
	)
)
