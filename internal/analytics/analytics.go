// Package analytics содержит чистые производные функции над управляемым
// состоянием: генератор прогнозируемого периметра, историю тревог камеры
// и агрегаты для страницы статистики. Никакого собственного состояния
// у пакета нет.
package analytics

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/shenikar/forest_fire_monitoring/internal/models"
)

// PredictPerimeter строит фиксированный восьмиугольник вокруг точки
// тревоги со смещениями ±0.05-0.06 градуса. Это геометрия-заглушка,
// а не физическая модель распространения огня.
func PredictPerimeter(lat, lng float64) models.PredictedPerimeter {
	return models.PredictedPerimeter{
		{lat + 0.05, lng - 0.05}, {lat + 0.06, lng},
		{lat + 0.05, lng + 0.05}, {lat, lng + 0.06},
		{lat - 0.05, lng + 0.05}, {lat - 0.06, lng},
		{lat - 0.05, lng - 0.05}, {lat, lng - 0.06},
	}
}

// CameraHistory возвращает прежние тревоги той же камеры, исключая саму
// тревогу, по убыванию времени, не больше limit записей (limit <= 0 - без
// ограничения)
func CameraHistory(alert models.Alert, all []models.Alert, limit int) []models.Alert {
	history := make([]models.Alert, 0)
	for _, a := range all {
		if a.CameraID == alert.CameraID && a.ID != alert.ID {
			history = append(history, a)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.After(history[j].Timestamp)
	})
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history
}

// DayCount - количество тревог за календарные сутки
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AlertsByDay группирует тревоги по календарным суткам за скользящее окно
// в days дней, включая текущие сутки. Дни без тревог присутствуют с нулем,
// порядок - от старых к новым.
func AlertsByDay(alerts []models.Alert, now time.Time, days int) []DayCount {
	if days <= 0 {
		return []DayCount{}
	}

	counts := make(map[string]int, days)
	for _, a := range alerts {
		counts[a.Timestamp.Format("2006-01-02")]++
	}

	buckets := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		buckets = append(buckets, DayCount{Date: day, Count: counts[day]})
	}
	return buckets
}

// AlertsByHour раскладывает тревоги по часу суток (0-23)
func AlertsByHour(alerts []models.Alert) [24]int {
	var buckets [24]int
	for _, a := range alerts {
		buckets[a.Timestamp.Hour()]++
	}
	return buckets
}

// ConfirmationCounts - распределение тревог по статусу подтверждения
type ConfirmationCounts struct {
	Pending    int `json:"pending"`
	Confirmed  int `json:"confirmed"`
	FalseAlarm int `json:"false_alarm"`
}

// AlertsByConfirmation считает тревоги в каждом статусе подтверждения
func AlertsByConfirmation(alerts []models.Alert) ConfirmationCounts {
	var counts ConfirmationCounts
	for _, a := range alerts {
		switch a.ConfirmationStatus {
		case models.AlertStatusConfirmed:
			counts.Confirmed++
		case models.AlertStatusFalseAlarm:
			counts.FalseAlarm++
		default:
			counts.Pending++
		}
	}
	return counts
}

// BandCount - количество тревог в температурной полосе
type BandCount struct {
	Band  string `json:"band"`
	Count int    `json:"count"`
}

// temperatureRe вытаскивает значение температуры из текстового
// снимка погоды вида "Soleado, 30°C, Viento 12km/h N"
var temperatureRe = regexp.MustCompile(`(\d+)°C`)

// AlertsByTemperature раскладывает тревоги по фиксированным температурным
// полосам. Тревоги, из снимка погоды которых температуру извлечь не
// удалось, пропускаются.
func AlertsByTemperature(alerts []models.Alert) []BandCount {
	bands := []BandCount{
		{Band: "<25°C"},
		{Band: "25-28°C"},
		{Band: "29-31°C"},
		{Band: "≥32°C"},
	}
	for _, a := range alerts {
		temp, ok := parseTemperature(a.Weather)
		if !ok {
			continue
		}
		switch {
		case temp < 25:
			bands[0].Count++
		case temp <= 28:
			bands[1].Count++
		case temp <= 31:
			bands[2].Count++
		default:
			bands[3].Count++
		}
	}
	return bands
}

func parseTemperature(weather string) (int, bool) {
	match := temperatureRe.FindStringSubmatch(weather)
	if match == nil {
		return 0, false
	}
	temp, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return temp, true
}
