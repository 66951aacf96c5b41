package db_models

// AppointmentStatus tracks a customer's progress from the shoot to delivery.
type AppointmentStatus string

const (
	AppointmentNotShot        AppointmentStatus = "cekim_yapilmadi"
	AppointmentShot           AppointmentStatus = "cekim_yapildi"
	AppointmentPhotosUploaded AppointmentStatus = "fotograflar_yuklendi"
	AppointmentPhotosSelected AppointmentStatus = "fotograflar_secildi"
	AppointmentAlbumPending   AppointmentStatus = "album_bekleniyor"
	AppointmentDelivered      AppointmentStatus = "teslim_edildi"
)

// AlbumStatus tracks post-production of the printed album.
type AlbumStatus string

const (
	AlbumNotStarted     AlbumStatus = "islem_yapilmadi"
	AlbumInDesign       AlbumStatus = "tasarim_asamasinda"
	AlbumPrinting       AlbumStatus = "baskida"
	AlbumPackaging      AlbumStatus = "paketlemede"
	AlbumShipping       AlbumStatus = "kargoda"
	AlbumReadyToDeliver AlbumStatus = "teslimata_hazir"
	AlbumDelivered      AlbumStatus = "teslim_edildi"
)

type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "active"
	CustomerCompleted CustomerStatus = "completed"
	CustomerArchived  CustomerStatus = "archived"
)

// Display labels are shared by emails, notifications and the dashboard.
var appointmentLabels = map[AppointmentStatus]string{
	AppointmentNotShot:        "Çekim Yapılmadı",
	AppointmentShot:           "Çekim Yapıldı",
	AppointmentPhotosUploaded: "Fotoğraflar Panele Yüklendi",
	AppointmentPhotosSelected: "Fotoğraflar Seçildi",
	AppointmentAlbumPending:   "Albüm Bekleniyor",
	AppointmentDelivered:      "Teslim Edildi",
}

var albumLabels = map[AlbumStatus]string{
	AlbumNotStarted:     "İşlem Yapılmadı",
	AlbumInDesign:       "Tasarım Aşamasında",
	AlbumPrinting:       "Baskıda",
	AlbumPackaging:      "Paketlemede",
	AlbumShipping:       "Kargoda",
	AlbumReadyToDeliver: "Teslimata Hazır",
	AlbumDelivered:      "Teslim Edildi",
}

// AppointmentStatuses lists the vocabulary in workflow order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentNotShot,
	AppointmentShot,
	AppointmentPhotosUploaded,
	AppointmentPhotosSelected,
	AppointmentAlbumPending,
	AppointmentDelivered,
}

var AlbumStatuses = []AlbumStatus{
	AlbumNotStarted,
	AlbumInDesign,
	AlbumPrinting,
	AlbumPackaging,
	AlbumShipping,
	AlbumReadyToDeliver,
	AlbumDelivered,
}

// PendingUploadStatuses feeds the "waiting for upload" dashboard badge.
var PendingUploadStatuses = []AppointmentStatus{AppointmentNotShot, AppointmentShot}

// PendingSelectionStatuses feeds the "waiting for selection" dashboard badge.
var PendingSelectionStatuses = []AppointmentStatus{AppointmentPhotosUploaded}

func (s AppointmentStatus) Valid() bool {
	_, ok := appointmentLabels[s]
	return ok
}

// Label returns the Turkish display text, or the raw value when unknown.
func (s AppointmentStatus) Label() string {
	if l, ok := appointmentLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s AlbumStatus) Valid() bool {
	_, ok := albumLabels[s]
	return ok
}

func (s AlbumStatus) Label() string {
	if l, ok := albumLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerActive, CustomerCompleted, CustomerArchived:
		return true
	}
	return false
}

type ShootType string

const (
	ShootWedding     ShootType = "wedding"
	ShootEngagement  ShootType = "engagement"
	ShootSaveTheDate ShootType = "saveTheDate"
	ShootPersonal    ShootType = "personal"
	ShootOther       ShootType = "other"
)

var shootTypeLabels = map[ShootType]string{
	ShootWedding:     "Düğün",
	ShootEngagement:  "Nişan",
	ShootSaveTheDate: "Save The Date",
	ShootPersonal:    "Kişisel Çekim",
	ShootOther:       "Diğer",
}

func (t ShootType) Valid() bool {
	_, ok := shootTypeLabels[t]
	return ok
}

func (t ShootType) Label() string {
	if l, ok := shootTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

type ShootStatus string

const (
	ShootPlanned   ShootStatus = "planned"
	ShootCompleted ShootStatus = "completed"
	ShootCancelled ShootStatus = "cancelled"
)

func (s ShootStatus) Valid() bool {
	switch s {
	case ShootPlanned, ShootCompleted, ShootCancelled:
		return true
	}
	return false
}
