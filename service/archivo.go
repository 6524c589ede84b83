package service

// Tipos de contenido de las descargas
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// Archivo descarga generada
type Archivo struct {
	Nombre      string
	ContentType string
	Datos       []byte
}
