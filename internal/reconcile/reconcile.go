// Package reconcile сводит "сырое" состояние движка симуляции с
// "управляемым" состоянием, которое читает панель и правят операторы.
// Политика слияния: по сенсорным полям источником истины является движок,
// по полям, внесенным человеком (статус подтверждения, заметки,
// метаданные камер), - управляемая копия.
package reconcile

import (
	"sort"

	"github.com/shenikar/forest_fire_monitoring/internal/models"
)

// managedAlertWindow - сколько последних тревог остается в управляемом списке
const managedAlertWindow = 20

// MergeAlerts объединяет сырые тревоги движка с управляемыми по id.
// Для тревог, присутствующих в обоих списках, берутся сенсорные поля
// сырой записи и человеческие поля управляемой. Тревоги, уже вытесненные
// из окна движка, сохраняются как есть; новые сырые принимаются без правок.
// Результат отсортирован по убыванию времени и ограничен последними 20.
// Записи с пустым id считаются отсутствующими. Функция чистая и не
// возвращает ошибок.
func MergeAlerts(raw, managed []models.Alert) []models.Alert {
	managedByID := make(map[string]models.Alert, len(managed))
	for _, alert := range managed {
		if alert.ID == "" {
			continue
		}
		managedByID[alert.ID] = alert
	}

	rawByID := make(map[string]models.Alert, len(raw))
	for _, alert := range raw {
		if alert.ID == "" {
			continue
		}
		rawByID[alert.ID] = alert
	}

	merged := make([]models.Alert, 0, len(managedByID)+len(rawByID))
	seen := make(map[string]bool, len(managedByID)+len(rawByID))

	appendByID := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true

		fromManaged, inManaged := managedByID[id]
		fromRaw, inRaw := rawByID[id]

		switch {
		case inManaged && inRaw:
			combined := fromRaw.Clone()
			combined.ConfirmationStatus = fromManaged.ConfirmationStatus
			combined.Notes = fromManaged.Notes
			merged = append(merged, combined)
		case inManaged:
			merged = append(merged, fromManaged)
		default:
			merged = append(merged, fromRaw)
		}
	}

	for _, alert := range managed {
		if alert.ID != "" {
			appendByID(alert.ID)
		}
	}
	for _, alert := range raw {
		if alert.ID != "" {
			appendByID(alert.ID)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	if len(merged) > managedAlertWindow {
		merged = merged[:managedAlertWindow]
	}
	return merged
}

// SyncCameraStatus переносит на управляемые камеры только статус из сырого
// списка движка. Остальные поля (имя, модель, избранное, история правок)
// остаются под исключительным контролем действий управления. Управляемые
// камеры, неизвестные движку (добавленные пользователем), не трогаются.
func SyncCameraStatus(raw, managed []models.Camera) []models.Camera {
	rawStatusByID := make(map[string]models.CameraStatus, len(raw))
	for _, cam := range raw {
		if cam.ID == "" {
			continue
		}
		rawStatusByID[cam.ID] = cam.Status
	}

	synced := make([]models.Camera, len(managed))
	for i, cam := range managed {
		if status, ok := rawStatusByID[cam.ID]; ok {
			cam.Status = status
		}
		synced[i] = cam
	}
	return synced
}
