package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fotopanel/internal/config"
	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/models/response_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

// defaultPackages are inserted when missing; edited rows are never reset.
var defaultPackages = []db_models.Package{
	{
		ID:          "trial",
		Name:        "Deneme Paketi",
		Price:       0,
		Storage:     0.5,
		Description: "3 gün sonunda hesabınız pasif duruma geçer.",
		Features: pq.StringArray{
			"500 MB Depolama Alanı",
			"1 Aktif Müşteri",
			"Maksimum 30 Fotoğraf Yükleme",
			"1 Aktif Randevu",
			"Albüm Fotoğraf Yükleme",
			"Yüklenen fotoğraflar filigranlıdır",
		},
	},
	{
		ID:          "standart",
		Name:        "Standart Paket",
		Price:       9499,
		Storage:     10,
		Popular:     true,
		Description: "Profesyonel stüdyolar için tüm yönetim araçları.",
		Features: pq.StringArray{
			"10 GB Depolama Alanı",
			"Sınırsız Müşteri Ekleme",
			"Randevu Hatırlatma Sistemi",
		},
	},
	{
		ID:          "kurumsal",
		Name:        "Kurumsal Paket",
		Price:       19999,
		Storage:     30,
		Description: "Kurumsal web sitesi ve özel hizmetler.",
		Features: pq.StringArray{
			"30 GB Depolama Alanı",
			"Firmanıza Özel Web Sitesi",
			"7/24 Öncelikli Destek",
		},
	},
}

type PackageServiceInterface interface {
	ListPackages(ctx context.Context) ([]db_models.Package, error)
	SavePackage(ctx context.Context, actor Actor, req request_models.SavePackageRequest) (*db_models.Package, error)
	AssignPackage(ctx context.Context, actor Actor, photographerID uuid.UUID, req request_models.AssignPackageRequest) (*response_models.PhotographerPlanResponse, error)
}

type PackageService struct {
	packages  repositories.IPackageRepository
	accounts  repositories.AccountRepository
	templates EmailTemplateServiceInterface
	log       *zap.Logger
	loc       *time.Location
}

func NewPackageService(
	packages repositories.IPackageRepository,
	accounts repositories.AccountRepository,
	templates EmailTemplateServiceInterface,
	log *zap.Logger,
	cfg *config.Config,
) PackageServiceInterface {
	loc := cfg.DashboardLocation
	if loc == nil {
		loc = time.UTC
	}
	return &PackageService{
		packages:  packages,
		accounts:  accounts,
		templates: templates,
		log:       log,
		loc:       loc,
	}
}

func (p *PackageService) ListPackages(ctx context.Context) ([]db_models.Package, error) {
	seed := make([]db_models.Package, len(defaultPackages))
	copy(seed, defaultPackages)
	if err := p.packages.InsertMissing(ctx, seed); err != nil {
		return nil, dbErr(err)
	}

	packages, err := p.packages.GetAllPackages(ctx)
	if err != nil {
		return nil, dbErr(err)
	}
	return packages, nil
}

func (p *PackageService) SavePackage(ctx context.Context, actor Actor, req request_models.SavePackageRequest) (*db_models.Package, error) {
	if !actor.IsSuperAdmin() {
		return nil, utils.ErrForbidden
	}

	verr := utils.NewValidationError()
	id := strings.TrimSpace(req.ID)
	name := strings.TrimSpace(req.Name)
	if id == "" {
		verr.Add("id", "Paket kimliği zorunludur")
	}
	if name == "" {
		verr.Add("name", "Paket adı zorunludur")
	}
	if req.Price == nil || *req.Price < 0 {
		verr.Add("price", "Fiyat 0 veya daha büyük olmalıdır")
	}
	if req.Storage == nil || *req.Storage < 0 {
		verr.Add("storage", "Depolama 0 veya daha büyük olmalıdır")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	features := pq.StringArray{}
	for _, f := range req.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}

	pkg := &db_models.Package{
		ID:          id,
		Name:        name,
		Price:       *req.Price,
		Storage:     *req.Storage,
		Features:    features,
		Popular:     req.Popular,
		Description: strings.TrimSpace(req.Description),
	}
	if err := p.packages.Upsert(ctx, pkg); err != nil {
		return nil, dbErr(err)
	}

	saved, err := p.packages.GetPackageById(ctx, id)
	if err != nil {
		return nil, dbErr(err)
	}
	if saved == nil {
		return nil, utils.ErrPackageNotFound
	}
	return saved, nil
}

// AssignPackage moves a photographer onto a package. The plan email is
// best-effort and never fails the assignment.
func (p *PackageService) AssignPackage(ctx context.Context, actor Actor, photographerID uuid.UUID, req request_models.AssignPackageRequest) (*response_models.PhotographerPlanResponse, error) {
	if !actor.IsSuperAdmin() {
		return nil, utils.ErrForbidden
	}

	pkg, err := p.packages.GetPackageById(ctx, strings.TrimSpace(req.PackageID))
	if err != nil {
		return nil, dbErr(err)
	}
	if pkg == nil {
		return nil, utils.ErrPackageNotFound
	}

	account, err := p.accounts.FindById(ctx, photographerID)
	if err != nil {
		return nil, dbErr(err)
	}
	if account == nil || account.Role != db_models.RoleAdmin {
		return nil, utils.ErrAccountNotFound
	}

	limit := pkg.StorageBytes()
	if err := p.accounts.UpdateSubscription(ctx, account.ID, pkg.ID, limit, req.SubscriptionExpiry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, dbErr(err)
	}

	expiry := "Süresiz"
	if req.SubscriptionExpiry != nil {
		expiry = utils.FormatDateTR(*req.SubscriptionExpiry, p.loc)
	}
	name := account.Name
	if name == "" {
		name = account.StudioName
	}
	err = p.templates.Send(ctx, nil, db_models.TemplatePlanUpdated, account.Email, map[string]string{
		"photographerName": name,
		"newPlanName":      pkg.Name,
		"expiryDate":       expiry,
		"storageLimit":     strconv.FormatFloat(pkg.Storage, 'f', -1, 64) + " GB",
	})
	if err != nil {
		p.log.Error("plan update email failed",
			zap.String("photographer_id", account.ID.String()),
			zap.String("package_id", pkg.ID),
			zap.Error(err))
	}

	return &response_models.PhotographerPlanResponse{
		ID:                 account.ID,
		Email:              account.Email,
		StudioName:         account.StudioName,
		PackageType:        pkg.ID,
		StorageLimit:       limit,
		StorageUsage:       account.StorageUsage,
		SubscriptionExpiry: req.SubscriptionExpiry,
	}, nil
}

