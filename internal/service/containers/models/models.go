package models

import (
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
)

// Request модели

// ListContainersRequest запрос на получение списка контейнеров
type ListContainersRequest struct {
	Enterprise *string `json:"enterprise,omitempty"` // Фильтр по предприятию (опционально)
	Arrived    *bool   `json:"arrived,omitempty"`    // Фильтр по факту прибытия (опционально)
	Scheduled  *bool   `json:"scheduled,omitempty"`  // Фильтр по наличию записи (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListContainersRequest) ToDomainFilter() domain.ContainersFilter {
	return domain.ContainersFilter{
		Enterprise: r.Enterprise,
		Arrived:    r.Arrived,
		Scheduled:  r.Scheduled,
	}
}

// Response модели

// ContainerResponse ответ с данными контейнера
type ContainerResponse struct {
	ID          string `json:"id"`          // "CONT-777"
	ArrivalDate string `json:"arrivalDate"` // "2026-08-28"
	ArrivalTime string `json:"arrivalTime"` // "14:30"
	Arrived     bool   `json:"arrived"`
	Scheduled   bool   `json:"scheduled"`

	AppointmentDate *string `json:"appointmentDate,omitempty"` // "2026-09-04"
	AppointmentHour *string `json:"appointmentHour,omitempty"` // "09:30"

	Enterprise *string  `json:"enterprise,omitempty"`
	Port       *string  `json:"port,omitempty"`
	Terminal   *string  `json:"terminal,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContainerListResponse ответ со списком контейнеров
type ContainerListResponse struct {
	Containers []ContainerResponse `json:"containers"`
}

// Методы конвертации

// FromDomainContainer конвертирует domain модель в DTO
func FromDomainContainer(c *domain.Container) *ContainerResponse {
	if c == nil {
		return nil
	}

	resp := &ContainerResponse{
		ID:          c.ID,
		ArrivalDate: c.ArrivalDate.Format(domain.DateFormat),
		ArrivalTime: c.ArrivalTime.String(),
		Arrived:     c.Arrived,
		Scheduled:   c.Scheduled,
		Enterprise:  c.Enterprise,
		Port:        c.Port,
		Terminal:    c.Terminal,
		Lat:         c.Lat,
		Lng:         c.Lng,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	if c.AppointmentDate != nil {
		date := c.AppointmentDate.Format(domain.DateFormat)
		resp.AppointmentDate = &date
	}
	if c.AppointmentHour != nil {
		hour := c.AppointmentHour.String()
		resp.AppointmentHour = &hour
	}

	return resp
}

// FromDomainContainerList конвертирует список domain моделей в DTO
func FromDomainContainerList(containers []*domain.Container) *ContainerListResponse {
	result := make([]ContainerResponse, 0, len(containers))
	for _, c := range containers {
		result = append(result, *FromDomainContainer(c))
	}
	return &ContainerListResponse{Containers: result}
}
