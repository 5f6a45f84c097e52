package models

import "time"

// SeedUsers возвращает стартовый набор учетных записей панели
func SeedUsers() []User {
	return []User{
		{Name: "Admin User", Email: "admin@sifdurango.com", Role: RoleAdmin, Status: UserStatusActive},
		{Name: "Operator User", Email: "operator@sifdurango.com", Role: RoleOperator, Status: UserStatusActive},
		{Name: "Viewer User", Email: "viewer@sifdurango.com", Role: RoleViewer, Status: UserStatusActive},
		{Name: "Inactive Operator", Email: "inactiveop@sifdurango.com", Role: RoleOperator, Status: UserStatusInactive},
	}
}

// SeedCameras возвращает стартовый набор камер программы мониторинга
// штата Дуранго. Камеры никогда не удаляются, только деактивируются,
// поэтому у выведенных из эксплуатации камер история уже содержит две записи.
func SeedCameras() []Camera {
	return []Camera{
		seedCamera("cam-01", "Cerro del Púlpito", 24.13, -104.57, "AXIS Q6075-E", date(2023, 1, 15, 10, 0)),
		seedCamera("cam-02", "Sierra de la Candela", 24.85, -105.11, "Bosch MIC IP 7100i", date(2023, 2, 20, 11, 30)),
		seedInactiveCamera("cam-03", "Cañón de Piaxtla", 23.71, -105.89, "Hikvision DS-2DF8C842IXS", date(2023, 3, 10, 9, 0), date(2024, 5, 10, 18, 0)),
		seedCamera("cam-04", "Reserva La Michilía", 23.44, -104.27, "AXIS Q6075-E", date(2023, 4, 5, 14, 0)),
		seedCamera("cam-05", "El Salto", 23.78, -105.36, "Panasonic WV-X6531N", date(2023, 5, 1, 12, 0)),
		seedCamera("cam-06", "Pico de la Bufa", 24.03, -104.69, "Bosch MIC IP 7100i", date(2023, 6, 15, 16, 45)),
		seedInactiveCamera("cam-07", "Sierra del Nayar", 25.20, -105.45, "AXIS Q6075-E", date(2023, 7, 22, 8, 0), date(2024, 6, 1, 10, 0)),
		seedCamera("cam-08", "Valle de Guatimapé", 24.88, -104.93, "Hikvision DS-2DF8C842IXS", date(2023, 8, 18, 13, 20)),
		seedCamera("cam-09", "Puente de Ojuela", 25.79, -103.78, "Panasonic WV-X6531N", date(2023, 9, 30, 17, 0)),
		seedCamera("cam-10", "Parque Nacional Guadiana", 23.95, -104.85, "Bosch MIC IP 7100i", date(2023, 10, 12, 11, 0)),
	}
}

func seedCamera(id, name string, lat, lng float64, model string, activated time.Time) Camera {
	return Camera{
		ID:             id,
		Name:           name,
		Latitude:       lat,
		Longitude:      lng,
		Status:         CameraStatusActive,
		Model:          model,
		ActivationDate: activated,
		StatusHistory: []CameraStatusHistory{
			{Status: CameraStatusActive, Timestamp: activated},
		},
	}
}

func seedInactiveCamera(id, name string, lat, lng float64, model string, activated, deactivated time.Time) Camera {
	cam := seedCamera(id, name, lat, lng, model, activated)
	cam.Status = CameraStatusInactive
	cam.StatusHistory = append(cam.StatusHistory, CameraStatusHistory{
		Status:    CameraStatusInactive,
		Timestamp: deactivated,
	})
	return cam
}

func date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}
