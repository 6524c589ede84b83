package config

// SafeErrorMessage en modo release no expone el detalle interno del error al cliente.
// Sin configuración cargada se trata como entorno de desarrollo.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
