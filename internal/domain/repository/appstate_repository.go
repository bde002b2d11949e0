package repository

import "encoding/json"

// AppStateRepository define el puerto clave/valor del estado local de la
// aplicación (preferencias, colecciones cacheadas). Reemplaza el storage
// implícito del cliente por un repositorio inyectable y testeable.
type AppStateRepository interface {
	Get(key string) (json.RawMessage, error)
	Set(key string, value json.RawMessage) error
	Delete(key string) error
	// All devuelve todas las parejas clave/valor persistidas.
	All() (map[string]json.RawMessage, error)
}
