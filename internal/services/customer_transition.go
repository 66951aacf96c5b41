package services

import (
	"fmt"
	"strings"
	"time"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/pkg/utils"
)

// ApplyCustomerUpdate merges a partial update into prev and returns the next
// record with the events the change raises. prev is not modified.
//
// deliveredAt is stamped when albumStatus moves to teslim_edildi and cleared
// when albumStatus is set to anything else. selectionApprovedAt is stamped
// once, on the first customer-originated false->true of selectionCompleted,
// and never touched again.
func ApplyCustomerUpdate(prev *db_models.Customer, req *request_models.UpdateCustomerRequest, now time.Time) (*db_models.Customer, []DomainEvent, error) {
	next := *prev
	verr := utils.NewValidationError()

	if req.BrideName != nil {
		if strings.TrimSpace(*req.BrideName) == "" {
			verr.Add("brideName", "Gelin adı zorunludur")
		}
		next.BrideName = strings.TrimSpace(*req.BrideName)
	}
	if req.GroomName != nil {
		next.GroomName = strings.TrimSpace(*req.GroomName)
	}
	if req.Phone != nil {
		next.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		next.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.TcID != nil {
		next.TcID = strings.TrimSpace(*req.TcID)
	}
	if req.WeddingDate != nil {
		d := *req.WeddingDate
		next.WeddingDate = &d
	}
	if req.Notes != nil {
		next.Notes = *req.Notes
	}
	if req.ContractID != nil {
		next.ContractID = strings.TrimSpace(*req.ContractID)
	}

	if req.Status != nil {
		s := db_models.CustomerStatus(*req.Status)
		if !s.Valid() {
			verr.Add("status", "Geçersiz durum")
		}
		next.Status = s
	}
	if req.AppointmentStatus != nil {
		s := db_models.AppointmentStatus(*req.AppointmentStatus)
		if !s.Valid() {
			verr.Add("appointmentStatus", "Geçersiz randevu durumu")
		}
		next.AppointmentStatus = s
	}
	if req.AlbumStatus != nil {
		s := db_models.AlbumStatus(*req.AlbumStatus)
		if !s.Valid() {
			verr.Add("albumStatus", "Geçersiz albüm durumu")
		}
		next.AlbumStatus = s
	}

	if req.SelectionLimits != nil {
		l := *req.SelectionLimits
		if l.Album < 0 || l.Cover < 0 || l.Poster < 0 {
			verr.Add("selectionLimits", "Seçim limitleri negatif olamaz")
		}
		next.SelectionLimits = db_models.NewSelectionLimits(l)
	}
	if req.SelectedPhotos != nil {
		picked := make([]db_models.SelectedPhoto, len(*req.SelectedPhotos))
		copy(picked, *req.SelectedPhotos)
		next.SelectedPhotos = picked
	}
	if req.SelectionLimits != nil || req.SelectedPhotos != nil {
		validateSelection(next.SelectedPhotos, next.Limits(), verr)
	}

	if req.SelectionCompleted != nil {
		next.SelectionCompleted = *req.SelectionCompleted
	}
	if req.CanDownload != nil {
		next.CanDownload = *req.CanDownload
	}

	if err := verr.OrNil(); err != nil {
		return nil, nil, err
	}

	if req.AlbumStatus != nil {
		switch {
		case next.AlbumStatus == db_models.AlbumDelivered && prev.AlbumStatus != db_models.AlbumDelivered:
			t := now
			next.DeliveredAt = &t
		case next.AlbumStatus != db_models.AlbumDelivered:
			next.DeliveredAt = nil
		}
	}

	var events []DomainEvent

	if req.FromCustomer() && next.SelectionCompleted && !prev.SelectionCompleted && prev.SelectionApprovedAt == nil {
		t := now
		next.SelectionApprovedAt = &t
		events = append(events, CustomerSelectionCompleted{
			CustomerID:     next.ID,
			PhotographerID: next.PhotographerID,
			CustomerName:   next.DisplayName(),
		})
	}

	if next.AppointmentStatus != prev.AppointmentStatus {
		events = append(events, statusChanged(&next, FieldAppointmentStatus,
			string(prev.AppointmentStatus), string(next.AppointmentStatus), next.AppointmentStatus.Label()))
	}
	if next.AlbumStatus != prev.AlbumStatus {
		events = append(events, statusChanged(&next, FieldAlbumStatus,
			string(prev.AlbumStatus), string(next.AlbumStatus), next.AlbumStatus.Label()))
	}

	return &next, events, nil
}

func statusChanged(c *db_models.Customer, field StatusField, from, to, label string) CustomerStatusChanged {
	return CustomerStatusChanged{
		CustomerID:     c.ID,
		PhotographerID: c.PhotographerID,
		CustomerName:   c.DisplayName(),
		CustomerEmail:  c.Email,
		Field:          field,
		From:           from,
		To:             to,
		Label:          label,
	}
}

func validateSelection(picked []db_models.SelectedPhoto, limits db_models.SelectionLimits, verr *utils.ValidationError) {
	counts := map[db_models.PhotoSelectionType]int{}
	for i, p := range picked {
		if !p.Type.Valid() {
			verr.Add(fmt.Sprintf("selectedPhotos[%d].type", i), "Geçersiz seçim türü")
			continue
		}
		counts[p.Type]++
	}
	for _, t := range []db_models.PhotoSelectionType{db_models.SelectionAlbum, db_models.SelectionCover, db_models.SelectionPoster} {
		if limit := limits.Limit(t); counts[t] > limit {
			verr.Add("selectedPhotos", fmt.Sprintf("%s için en fazla %d fotoğraf seçilebilir", t, limit))
		}
	}
}
