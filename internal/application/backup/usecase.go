package backup

import (
	"encoding/json"
	"sync"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// reservedThemeKey preferencia de tema de la interfaz: nunca viaja en un
// respaldo.
const reservedThemeKey = "display_theme"

// UseCase exporta y restaura el estado clave/valor de la aplicación.
//
// Restaurar exige haber generado un respaldo antes en la misma sesión del
// proceso: es el candado que evita pisar el estado local con un archivo
// arbitrario sin tener una copia reciente a la mano.
type UseCase struct {
	stateRepo repository.AppStateRepository
	log       *logger.Logger

	mu            sync.Mutex
	backupThisRun bool
}

// NewUseCase construye el caso de uso de respaldo.
func NewUseCase(stateRepo repository.AppStateRepository, log *logger.Logger) *UseCase {
	return &UseCase{stateRepo: stateRepo, log: log.Module("backup")}
}

// Export serializa todo el estado persistido como un único objeto JSON.
// La clave reservada del tema queda fuera. Con merchantID no vacío, los
// valores que son arreglos se filtran a los elementos que referencian ese
// comerciante; el resto de claves viaja completo.
func (uc *UseCase) Export(merchantID string) ([]byte, error) {
	state, err := uc.stateRepo.All()
	if err != nil {
		return nil, err
	}
	delete(state, reservedThemeKey)

	if merchantID != "" {
		for key, value := range state {
			filtered, ok := filterArrayByMerchant(value, merchantID)
			if ok {
				state[key] = filtered
			}
		}
	}

	out, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.backupThisRun = true
	uc.mu.Unlock()

	return out, nil
}

// Restore valida el archivo y sobreescribe el estado clave por clave.
// Rechaza con ErrBackupRequired si no se exportó un respaldo en esta sesión,
// y con ErrInvalidBackup si el archivo no es un objeto JSON válido (sin
// aplicar nada parcialmente). Fallos de claves individuales al escribir se
// registran y se continúa (best-effort).
func (uc *UseCase) Restore(data []byte) error {
	uc.mu.Lock()
	allowed := uc.backupThisRun
	uc.mu.Unlock()
	if !allowed {
		return domain.ErrBackupRequired
	}

	var state map[string]json.RawMessage
	if err := json.Unmarshal(data, &state); err != nil || state == nil {
		return domain.ErrInvalidBackup
	}

	for key, value := range state {
		if key == reservedThemeKey {
			continue
		}
		if err := uc.stateRepo.Set(key, value); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo restaurar la clave")
		}
	}
	return nil
}

// Temas de interfaz aceptados.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme devuelve la preferencia de tema guardada, o vacío si no hay ninguna.
// La clave vive fuera de los respaldos: leerla y escribirla pasa por aquí.
func (uc *UseCase) Theme() (string, error) {
	raw, err := uc.stateRepo.Get(reservedThemeKey)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}
	var theme string
	if err := json.Unmarshal(raw, &theme); err != nil {
		return "", domain.ErrInvalidInput
	}
	return theme, nil
}

// SetTheme guarda la preferencia de tema. Solo acepta los temas conocidos.
func (uc *UseCase) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return domain.ErrInvalidInput
	}
	raw, err := json.Marshal(theme)
	if err != nil {
		return err
	}
	return uc.stateRepo.Set(reservedThemeKey, raw)
}

// ResetTheme elimina la preferencia: el cliente vuelve a su tema por defecto.
func (uc *UseCase) ResetTheme() error {
	return uc.stateRepo.Delete(reservedThemeKey)
}

// filterArrayByMerchant filtra un valor JSON si es un arreglo de objetos,
// dejando los elementos cuyo merchant_id (o merchantId) coincide. El segundo
// retorno indica si el valor era filtrable.
func filterArrayByMerchant(value json.RawMessage, merchantID string) (json.RawMessage, bool) {
	var arr []map[string]json.RawMessage
	if err := json.Unmarshal(value, &arr); err != nil {
		return nil, false
	}
	kept := make([]map[string]json.RawMessage, 0, len(arr))
	for _, el := range arr {
		if referencesMerchant(el, merchantID) {
			kept = append(kept, el)
		}
	}
	out, err := json.Marshal(kept)
	if err != nil {
		return nil, false
	}
	return out, true
}

func referencesMerchant(el map[string]json.RawMessage, merchantID string) bool {
	for _, field := range []string{"merchant_id", "merchantId"} {
		raw, ok := el[field]
		if !ok {
			continue
		}
		var id string
		if err := json.Unmarshal(raw, &id); err == nil && id == merchantID {
			return true
		}
	}
	return false
}
