package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"activos/config"
	"activos/dto"
	"activos/export"
	"activos/models"
	"activos/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// PlantillaService almacén de plantillas Excel y generación del Formato 7.1
type PlantillaService interface {
	Subir(ctx context.Context, nombreArchivo string, datos []byte) (*models.Plantilla, error)
	Listar(ctx context.Context) ([]models.Plantilla, error)
	VistaPrevia(ctx context.Context, id string) ([][]string, error)
	Eliminar(ctx context.Context, id string) error
	Generar(ctx context.Context, id string, req dto.GenerarPlantillaRequest) (*Archivo, error)
}

type plantillaService struct {
	plantillas repository.PlantillaRepository
	activos    repository.ActivoRepository
	empresa    config.EmpresaConfig
	now        func() time.Time
}

func NewPlantillaService(plantillas repository.PlantillaRepository, activos repository.ActivoRepository, empresa config.EmpresaConfig) PlantillaService {
	return &plantillaService{plantillas: plantillas, activos: activos, empresa: empresa, now: time.Now}
}

// Subir analiza el libro y reemplaza la plantilla existente del mismo formato
func (s *plantillaService) Subir(ctx context.Context, nombreArchivo string, datos []byte) (*models.Plantilla, error) {
	tipo, err := export.DetectarTipo(nombreArchivo)
	if err != nil {
		return nil, Validation(err.Error())
	}

	estructura, err := export.Analizar(datos)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("archivo", nombreArchivo).Msg("plantilla ilegible")
		return nil, Validation("Error al procesar el archivo")
	}
	raw, err := json.Marshal(estructura)
	if err != nil {
		return nil, Internal("Error al guardar la plantilla", err)
	}

	p := &models.Plantilla{
		ID:         tipo,
		Nombre:     nombreArchivo,
		Tipo:       tipo,
		Datos:      datos,
		Estructura: raw,
		FechaCarga: s.now(),
	}
	if err := s.plantillas.Guardar(ctx, p); err != nil {
		return nil, Internal("Error al guardar la plantilla", err)
	}

	zerolog.Ctx(ctx).Info().Str("plantilla", p.ID).Str("archivo", nombreArchivo).Msg("plantilla guardada")
	return p, nil
}

func (s *plantillaService) Listar(ctx context.Context) ([]models.Plantilla, error) {
	list, err := s.plantillas.Listar(ctx)
	if err != nil {
		return nil, Internal("Error al obtener plantillas", err)
	}
	return list, nil
}

func (s *plantillaService) obtener(ctx context.Context, id string) (*models.Plantilla, error) {
	p, err := s.plantillas.Obtener(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(MsgPlantillaNoEncontrada)
		}
		return nil, Internal("Error al obtener la plantilla", err)
	}
	return p, nil
}

// VistaPrevia si el libro guardado no se puede leer se devuelve una vista vacía
func (s *plantillaService) VistaPrevia(ctx context.Context, id string) ([][]string, error) {
	p, err := s.obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := export.VistaPrevia(p.Datos)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("plantilla", id).Msg("error al generar vista previa")
		return [][]string{}, nil
	}
	return rows, nil
}

func (s *plantillaService) Eliminar(ctx context.Context, id string) error {
	if err := s.plantillas.Eliminar(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(MsgPlantillaNoEncontrada)
		}
		return Internal("Error al eliminar la plantilla", err)
	}
	zerolog.Ctx(ctx).Info().Str("plantilla", id).Msg("plantilla eliminada")
	return nil
}

// Generar llena la plantilla del Formato 7.1 con el libro de datos recibido o,
// si no se envía, con los activos registrados
func (s *plantillaService) Generar(ctx context.Context, id string, req dto.GenerarPlantillaRequest) (*Archivo, error) {
	switch id {
	case models.PlantillaFormato71:
	case models.PlantillaFormato72, models.PlantillaFormato73, models.PlantillaFormato74:
		return nil, Validation("generación no soportada para " + id)
	default:
		return nil, NotFound(MsgPlantillaNoEncontrada)
	}

	p, err := s.obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	cab := export.Cabecera71{Periodo: strings.TrimSpace(req.Periodo)}
	var registros []export.Registro71

	if len(req.Datos) > 0 {
		cab, registros, err = export.LeerDatos71(req.Datos)
		if err != nil {
			return nil, Validation("Error al procesar el contenido del archivo Excel")
		}
		cab.Periodo = strings.TrimSpace(req.Periodo)
	} else {
		registros, err = s.registrosDesdeActivos(ctx)
		if err != nil {
			return nil, Internal("Error al generar el archivo", err)
		}
	}

	if cab.Periodo == "" {
		cab.Periodo = strconv.Itoa(s.now().Year())
	}
	if req.RUC != "" {
		cab.RUC = req.RUC
	} else if cab.RUC == "" {
		cab.RUC = s.empresa.RUC
	}
	if req.RazonSocial != "" {
		cab.RazonSocial = req.RazonSocial
	} else if cab.RazonSocial == "" {
		cab.RazonSocial = s.empresa.RazonSocial
	}

	data, err := export.LlenarFormato71(p.Datos, cab, registros)
	if err != nil {
		return nil, Internal("Error al generar el archivo", err)
	}

	zerolog.Ctx(ctx).Info().Int("registros", len(registros)).Str("periodo", cab.Periodo).Msg("formato 7.1 generado")
	return &Archivo{Nombre: export.NombreFormato71, ContentType: ContentTypeXLSX, Datos: data}, nil
}

func (s *plantillaService) registrosDesdeActivos(ctx context.Context) ([]export.Registro71, error) {
	activos, err := s.activos.ListarRegistro(ctx)
	if err != nil {
		return nil, err
	}
	registros := make([]export.Registro71, 0, len(activos))
	for _, a := range activos {
		fecha := ""
		if !a.FechaAdquisicion.IsZero() {
			fecha = a.FechaAdquisicion.Format("02/01/2006")
		}
		registros = append(registros, export.Registro71{
			Codigo:           a.Codigo,
			CuentaContable:   a.CuentaContable,
			Descripcion:      a.Descripcion,
			Marca:            a.Marca,
			Modelo:           a.Modelo,
			NumeroSerie:      a.NumeroSerie,
			Valor:            a.ValorAdquisicion,
			FechaAdquisicion: fecha,
			FechaInicio:      fecha,
			Porcentaje:       a.TasaDepreciacion,
		})
	}
	return registros, nil
}
