package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fotopanel/internal/config"
	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/models/response_models"
	"fotopanel/internal/repositories"
	mem "fotopanel/pkg/memcache"
	"fotopanel/pkg/utils"
)

const (
	SourcePhotographer = "photographer"
	SourceSystem       = "system"
	SourceDefault      = "default"
)

var defaultCustomizations = map[db_models.EmailTemplateType]db_models.TemplateCustomization{
	db_models.TemplateVerifyEmail: {
		PrimaryColor: "#6366f1",
		Subject:      "Aramıza Hoş Geldin! E-posta Adresini Doğrula",
		HeaderText:   "Aramıza Hoş Geldin!",
		BodyText:     "Fotopanel stüdyo yönetim paneline kaydolduğun için çok mutluyuz. 7 günlük deneme sürümünü başlatmak ve panelini kullanmaya başlamak için lütfen e-posta adresini doğrula.",
		ButtonText:   "E-posta Adresimi Doğrula",
		FooterText:   "Bu e-postayı Fotopanel'e kayıt olduğun için aldın. Eğer kayıt olmadıysan bu mesajı dikkate almayabilirsin.",
		CompanyName:  "Fotopanel",
	},
	db_models.TemplateWelcomePhotographer: {
		PrimaryColor: "#6366f1",
		Subject:      "Fotopanel Ailesine Hoş Geldiniz!",
		HeaderText:   "Hoş Geldiniz!",
		BodyText:     "Stüdyonuzun yönetimini kolaylaştırmak ve müşterilerinize eşsiz bir fotoğraf seçim deneyimi sunmak için en doğru yerdesiniz.",
		ButtonText:   "Panele Giriş Yap",
		FooterText:   "Yardıma mı ihtiyacınız var? Destek ekibimiz her zaman yanınızda.",
		CompanyName:  "Fotopanel",
	},
	db_models.TemplateCustomerStatusUpdate: {
		PrimaryColor: "#ec4899",
		Subject:      "Sürecinizde Yeni Bir Güncelleme Var",
		HeaderText:   "Sürecinizde Güncelleme",
		BodyText:     "tarafından yürütülen sürecinizde bir güncelleme yapıldı.",
		FooterText:   "Sürecinizi takip etmeye devam ediyoruz. Herhangi bir sorunuz olduğunda bizimle iletişime geçebilirsiniz.",
	},
	db_models.TemplatePlanUpdated: {
		PrimaryColor: "#6366f1",
		Subject:      "Üyelik Paketiniz Güncellendi",
		HeaderText:   "Üyelik Bilgileri",
		BodyText:     "Üyeliğiniz başarıyla güncellenmiştir. Yeni paket bilgileriniz aşağıdadır:",
		ButtonText:   "Panelime Giriş Yap",
		FooterText:   "Bu bir bilgilendirme mesajıdır. Sorularınız için bize ulaşabilirsiniz.",
		CompanyName:  "Fotopanel",
	},
}

var templatePlaceholders = map[db_models.EmailTemplateType][]string{
	db_models.TemplateVerifyEmail:          {"photographerName", "verifyUrl"},
	db_models.TemplateWelcomePhotographer:  {"photographerName", "studioName", "loginUrl"},
	db_models.TemplateCustomerStatusUpdate: {"customerName", "studioName", "statusTitle", "statusValue"},
	db_models.TemplatePlanUpdated:          {"photographerName", "newPlanName", "expiryDate", "storageLimit", "loginUrl"},
}

var previewVariables = map[string]string{
	"photographerName": "Ayşe Yılmaz",
	"studioName":       "Işık Fotoğrafçılık",
	"customerName":     "Elif & Mert",
	"statusTitle":      "Albüm Durumu",
	"statusValue":      "Baskıda",
	"newPlanName":      "Standart",
	"expiryDate":       "1 Ocak 2027",
	"storageLimit":     "10 GB",
	"verifyUrl":        "https://example.com/verify",
	"loginUrl":         "https://example.com/login",
}

const announcementCompany = "Fotopanel"

var (
	placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z][A-Za-z0-9_]*)\s*\}\}`)
	hexColorRe    = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ResolvedTemplate is the effective customization of one template type for
// one owner, as cached between sends.
type ResolvedTemplate struct {
	Customization db_models.TemplateCustomization
	Source        string
}

type EmailTemplateServiceInterface interface {
	List(ctx context.Context, actor Actor) ([]response_models.TemplateView, error)
	Get(ctx context.Context, actor Actor, t db_models.EmailTemplateType) (*response_models.TemplateView, error)
	Save(ctx context.Context, actor Actor, t db_models.EmailTemplateType, c db_models.TemplateCustomization) (*response_models.TemplateView, error)
	Reset(ctx context.Context, actor Actor, t db_models.EmailTemplateType) (*response_models.TemplateView, error)
	Preview(ctx context.Context, actor Actor, t db_models.EmailTemplateType, req request_models.PreviewTemplateRequest) (*response_models.RenderedEmail, error)

	// SendTest renders t like Preview and mails it to the caller's own address
	// with a [TEST] subject prefix.
	SendTest(ctx context.Context, actor Actor, t db_models.EmailTemplateType, req request_models.PreviewTemplateRequest) (*response_models.TestMailResult, error)

	// Send renders t for owner (nil for system mail) and delivers it to one
	// recipient.
	Send(ctx context.Context, owner *uuid.UUID, t db_models.EmailTemplateType, to string, vars map[string]string) error

	// ComposeAnnouncement wraps a free-text platform message in the mail layout.
	ComposeAnnouncement(subject, message string) (Mail, error)
}

type EmailTemplateService struct {
	repo     repositories.EmailTemplateRepository
	accounts repositories.AccountRepository
	cache    mem.Store[ResolvedTemplate]
	mailer   IMailService
	baseURL  string
	layout   *template.Template
}

func NewEmailTemplateService(
	repo repositories.EmailTemplateRepository,
	accounts repositories.AccountRepository,
	cache mem.Store[ResolvedTemplate],
	mailer IMailService,
	cfg *config.Config,
) EmailTemplateServiceInterface {
	return &EmailTemplateService{
		repo:     repo,
		accounts: accounts,
		cache:    cache,
		mailer:   mailer,
		baseURL:  strings.TrimRight(cfg.AppBaseURL, "/"),
		layout:   template.Must(template.New("email").Parse(emailLayoutHTML)),
	}
}

func ownerOf(actor Actor) (*uuid.UUID, error) {
	switch {
	case actor.IsSuperAdmin():
		return nil, nil
	case actor.IsAdmin():
		id := actor.UserID
		return &id, nil
	}
	return nil, utils.ErrForbidden
}

func cacheKey(owner *uuid.UUID, t db_models.EmailTemplateType) string {
	if owner == nil {
		return "system:" + string(t)
	}
	return owner.String() + ":" + string(t)
}

// resolve walks photographer -> system -> built-in default.
func (s *EmailTemplateService) resolve(ctx context.Context, owner *uuid.UUID, t db_models.EmailTemplateType) (ResolvedTemplate, error) {
	key := cacheKey(owner, t)
	if hit, ok := s.cache.Get(key); ok {
		return hit, nil
	}

	res := ResolvedTemplate{Customization: defaultCustomizations[t], Source: SourceDefault}

	system, err := s.repo.Find(ctx, nil, t)
	if err != nil {
		return ResolvedTemplate{}, dbErr(err)
	}
	if system != nil {
		res.Customization = res.Customization.Merge(system.Customization.Data())
		res.Source = SourceSystem
	}

	if owner != nil {
		own, err := s.repo.Find(ctx, owner, t)
		if err != nil {
			return ResolvedTemplate{}, dbErr(err)
		}
		if own != nil {
			res.Customization = res.Customization.Merge(own.Customization.Data())
			res.Source = SourcePhotographer
		}
	}

	s.cache.Set(key, res)
	return res, nil
}

func (s *EmailTemplateService) invalidate(owner *uuid.UUID, t db_models.EmailTemplateType) {
	if owner == nil {
		// every owner falls back to the system row
		s.cache.DeletePrefix("")
		return
	}
	s.cache.Delete(cacheKey(owner, t))
}

func (s *EmailTemplateService) view(ctx context.Context, owner *uuid.UUID, t db_models.EmailTemplateType) (*response_models.TemplateView, error) {
	res, err := s.resolve(ctx, owner, t)
	if err != nil {
		return nil, err
	}
	return &response_models.TemplateView{
		Type:          t,
		Source:        res.Source,
		Customization: res.Customization,
		Placeholders:  templatePlaceholders[t],
	}, nil
}

func (s *EmailTemplateService) List(ctx context.Context, actor Actor) ([]response_models.TemplateView, error) {
	owner, err := ownerOf(actor)
	if err != nil {
		return nil, err
	}
	out := make([]response_models.TemplateView, 0, len(db_models.EmailTemplateTypes))
	for _, t := range db_models.EmailTemplateTypes {
		v, err := s.view(ctx, owner, t)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *EmailTemplateService) Get(ctx context.Context, actor Actor, t db_models.EmailTemplateType) (*response_models.TemplateView, error) {
	owner, err := ownerOf(actor)
	if err != nil {
		return nil, err
	}
	if !t.Valid() {
		return nil, utils.ErrTemplateTypeNotFound
	}
	return s.view(ctx, owner, t)
}

func (s *EmailTemplateService) Save(ctx context.Context, actor Actor, t db_models.EmailTemplateType, c db_models.TemplateCustomization) (*response_models.TemplateView, error) {
	owner, err := ownerOf(actor)
	if err != nil {
		return nil, err
	}
	if !t.Valid() {
		return nil, utils.ErrTemplateTypeNotFound
	}
	if c.PrimaryColor != "" && !hexColorRe.MatchString(c.PrimaryColor) {
		verr := utils.NewValidationError()
		verr.Add("primaryColor", "Renk #RRGGBB biçiminde olmalıdır")
		return nil, verr
	}

	tpl := &db_models.EmailTemplate{
		PhotographerID: owner,
		TemplateType:   t,
		Customization:  datatypes.NewJSONType(c),
		IsActive:       true,
	}
	if err := s.repo.Upsert(ctx, tpl); err != nil {
		return nil, dbErr(err)
	}
	s.invalidate(owner, t)
	return s.view(ctx, owner, t)
}

func (s *EmailTemplateService) Reset(ctx context.Context, actor Actor, t db_models.EmailTemplateType) (*response_models.TemplateView, error) {
	owner, err := ownerOf(actor)
	if err != nil {
		return nil, err
	}
	if !t.Valid() {
		return nil, utils.ErrTemplateTypeNotFound
	}
	if err := s.repo.Delete(ctx, owner, t); err != nil {
		return nil, dbErr(err)
	}
	s.invalidate(owner, t)
	return s.view(ctx, owner, t)
}

func (s *EmailTemplateService) Preview(ctx context.Context, actor Actor, t db_models.EmailTemplateType, req request_models.PreviewTemplateRequest) (*response_models.RenderedEmail, error) {
	owner, err := ownerOf(actor)
	if err != nil {
		return nil, err
	}
	if !t.Valid() {
		return nil, utils.ErrTemplateTypeNotFound
	}
	m, err := s.draft(ctx, owner, t, req, nil)
	if err != nil {
		return nil, err
	}
	return &response_models.RenderedEmail{Subject: m.Subject, HTML: m.HTML}, nil
}

func (s *EmailTemplateService) SendTest(ctx context.Context, actor Actor, t db_models.EmailTemplateType, req request_models.PreviewTemplateRequest) (*response_models.TestMailResult, error) {
	owner, err := ownerOf(actor)
	if err != nil {
		return nil, err
	}
	if !t.Valid() {
		return nil, utils.ErrTemplateTypeNotFound
	}

	account, err := s.accounts.FindById(ctx, actor.UserID)
	if err != nil {
		return nil, dbErr(err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	to := strings.TrimSpace(account.Email)
	if to == "" {
		verr := utils.NewValidationError()
		verr.Add("email", "Hesabınızda e-posta adresi yok")
		return nil, verr
	}

	self := map[string]string{}
	if account.Name != "" {
		self["photographerName"] = account.Name
	}
	if account.StudioName != "" {
		self["studioName"] = account.StudioName
	}
	m, err := s.draft(ctx, owner, t, req, self)
	if err != nil {
		return nil, err
	}
	m.Subject = "[TEST] " + m.Subject
	if err := s.deliver(ctx, t, to, m); err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrMailDelivery, err)
	}
	return &response_models.TestMailResult{To: to, Subject: m.Subject}, nil
}

// draft renders t with the owner's customization, an optional unsaved
// customization on top and sample values. Later variable sets win.
func (s *EmailTemplateService) draft(ctx context.Context, owner *uuid.UUID, t db_models.EmailTemplateType, req request_models.PreviewTemplateRequest, self map[string]string) (Mail, error) {
	res, err := s.resolve(ctx, owner, t)
	if err != nil {
		return Mail{}, err
	}

	c := res.Customization
	if req.Customization != nil {
		c = c.Merge(*req.Customization)
	}
	vars := map[string]string{}
	for _, set := range []map[string]string{previewVariables, self, req.Variables} {
		for k, v := range set {
			vars[k] = v
		}
	}
	return s.render(t, c, vars)
}

func (s *EmailTemplateService) Send(ctx context.Context, owner *uuid.UUID, t db_models.EmailTemplateType, to string, vars map[string]string) error {
	res, err := s.resolve(ctx, owner, t)
	if err != nil {
		return err
	}
	m, err := s.render(t, res.Customization, vars)
	if err != nil {
		return err
	}
	return s.deliver(ctx, t, to, m)
}

func (s *EmailTemplateService) deliver(ctx context.Context, t db_models.EmailTemplateType, to string, m Mail) error {
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("send %s: no recipient", t)
	}
	m.To = to
	if err := s.mailer.Send(ctx, m); err != nil {
		return fmt.Errorf("send %s: %w", t, err)
	}
	return nil
}

func (s *EmailTemplateService) ComposeAnnouncement(subject, message string) (Mail, error) {
	v := emailView{
		Subject:      strings.Join(strings.Fields(subject), " "),
		CompanyName:  announcementCompany,
		PrimaryColor: defaultCustomizations[db_models.TemplateWelcomePhotographer].PrimaryColor,
		Header:       strings.TrimSpace(subject),
		Body:         strings.TrimSpace(message),
		ButtonText:   "Panele Giriş Yap",
		ButtonURL:    s.baseURL + "/login",
		Footer:       "Bu e-posta " + announcementCompany + " tarafından otomatik olarak gönderilmiştir.",
		Year:         time.Now().Year(),
	}

	var hb bytes.Buffer
	if err := s.layout.Execute(&hb, v); err != nil {
		return Mail{}, fmt.Errorf("render announcement: %w", err)
	}
	return Mail{Subject: v.Subject, HTML: hb.String(), Text: plainText(v)}, nil
}

// ------------------- Rendering -------------------

type emailHighlight struct {
	Title string
	Value string
}

type emailDetail struct {
	Label string
	Value string
}

type emailView struct {
	Subject      string
	LogoURL      string
	CompanyName  string
	PrimaryColor string
	Eyebrow      string
	Header       string
	Greeting     string
	Body         string
	Highlight    *emailHighlight
	Details      []emailDetail
	ButtonText   string
	ButtonURL    string
	Footer       string
	Signature    string
	Year         int
}

// fillPlaceholders replaces {{name}} tokens with raw values. Unknown tokens
// are kept as written. Escaping happens later in the HTML layout.
func fillPlaceholders(s string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(s, func(tok string) string {
		name := placeholderRe.FindStringSubmatch(tok)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return tok
	})
}

func (s *EmailTemplateService) render(t db_models.EmailTemplateType, c db_models.TemplateCustomization, vars map[string]string) (Mail, error) {
	fill := func(str string) string { return fillPlaceholders(str, vars) }

	color := c.PrimaryColor
	if !hexColorRe.MatchString(color) {
		color = defaultCustomizations[t].PrimaryColor
	}
	loginURL := vars["loginUrl"]
	if loginURL == "" {
		loginURL = s.baseURL + "/login"
	}

	v := emailView{
		LogoURL:      c.LogoURL,
		CompanyName:  fill(c.CompanyName),
		PrimaryColor: color,
		Header:       fill(c.HeaderText),
		Body:         fill(c.BodyText),
		ButtonText:   fill(c.ButtonText),
		Footer:       fill(c.FooterText),
		Year:         time.Now().Year(),
	}

	subject := c.Subject
	switch t {
	case db_models.TemplateVerifyEmail:
		v.Greeting = fill("Merhaba {{photographerName}},")
		v.ButtonURL = vars["verifyUrl"]
		if subject == "" {
			subject = c.CompanyName + " - E-posta Adresinizi Doğrulayın"
		}
	case db_models.TemplateWelcomePhotographer:
		v.Greeting = fill("Merhaba {{photographerName}},")
		v.ButtonURL = loginURL
		if subject == "" {
			subject = c.CompanyName + " Ailesine Hoş Geldiniz!"
		}
	case db_models.TemplateCustomerStatusUpdate:
		v.Eyebrow = "BİLGİLENDİRME"
		v.Greeting = fill("Merhaba {{customerName}},")
		v.Body = fill("{{studioName}} " + c.BodyText)
		v.Highlight = &emailHighlight{Title: fill("{{statusTitle}}"), Value: fill("{{statusValue}}")}
		v.Signature = fill("{{studioName}}")
		if subject == "" {
			subject = "{{studioName}} - {{statusTitle}} Güncellendi"
		}
	case db_models.TemplatePlanUpdated:
		v.Greeting = fill("Sayın {{photographerName}},")
		v.Details = []emailDetail{
			{Label: "Yeni Paket", Value: fill("{{newPlanName}}")},
			{Label: "Geçerlilik Tarihi", Value: fill("{{expiryDate}}")},
			{Label: "Depolama Alanı", Value: fill("{{storageLimit}}")},
		}
		v.ButtonURL = loginURL
		if subject == "" {
			subject = c.CompanyName + " - Üyeliğiniz Güncellendi"
		}
	}
	if v.ButtonText == "" {
		v.ButtonURL = ""
	}

	// headers must stay on one line
	v.Subject = strings.Join(strings.Fields(fill(subject)), " ")

	var hb bytes.Buffer
	if err := s.layout.Execute(&hb, v); err != nil {
		return Mail{}, fmt.Errorf("render %s: %w", t, err)
	}
	return Mail{Subject: v.Subject, HTML: hb.String(), Text: plainText(v)}, nil
}

func plainText(v emailView) string {
	var b strings.Builder
	line := func(s string) {
		if s != "" {
			b.WriteString(s)
			b.WriteString("\n\n")
		}
	}
	line(v.Header)
	line(v.Greeting)
	line(v.Body)
	if v.Highlight != nil {
		line(v.Highlight.Title + ": " + v.Highlight.Value)
	}
	for _, d := range v.Details {
		b.WriteString(d.Label + ": " + d.Value + "\n")
	}
	if len(v.Details) > 0 {
		b.WriteString("\n")
	}
	if v.ButtonURL != "" {
		line(v.ButtonText + ": " + v.ButtonURL)
	}
	line(v.Footer)
	if v.Signature != "" {
		line(v.Signature)
	}
	if v.CompanyName != "" {
		fmt.Fprintf(&b, "© %d %s", v.Year, v.CompanyName)
	}
	return b.String()
}

const emailLayoutHTML = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Subject}}</title>
</head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f3f4f6;">
  <div style="max-width:600px;margin:0 auto;padding:40px 16px;">
    {{if .LogoURL}}
    <div style="text-align:center;margin-bottom:32px;">
      <img src="{{.LogoURL}}" width="140" height="40" alt="{{.CompanyName}}">
    </div>
    {{end}}
    <div style="background-color:#ffffff;border-radius:24px;padding:32px;border:1px solid #e5e7eb;">
      {{if .Eyebrow}}
      <p style="color:{{.PrimaryColor}};font-size:10px;font-weight:bold;text-transform:uppercase;letter-spacing:0.1em;margin:0 0 8px 0;text-align:center;">{{.Eyebrow}}</p>
      {{end}}
      <h1 style="font-size:24px;font-weight:bold;color:#111827;text-align:center;margin:0 0 16px 0;">{{.Header}}</h1>
      {{if .Greeting}}<p style="color:#4b5563;font-size:14px;margin:0 0 16px 0;">{{.Greeting}}</p>{{end}}
      <p style="color:#374151;font-size:15px;line-height:1.6;margin:0 0 24px 0;white-space:pre-line;">{{.Body}}</p>
      {{with .Highlight}}
      <div style="border:1px solid {{$.PrimaryColor}};border-radius:12px;padding:16px;text-align:center;margin-bottom:24px;">
        <p style="color:#6b7280;font-size:11px;text-transform:uppercase;font-weight:bold;margin:0 0 4px 0;">{{.Title}}</p>
        <p style="color:{{$.PrimaryColor}};font-size:18px;font-weight:bold;margin:0;">{{.Value}}</p>
      </div>
      {{end}}
      {{if .Details}}
      <table style="width:100%;border-collapse:collapse;margin-bottom:24px;">
        {{range .Details}}
        <tr style="border-bottom:1px solid #e5e7eb;">
          <td style="padding:12px 0;color:#6b7280;font-size:12px;text-transform:uppercase;font-weight:600;">{{.Label}}</td>
          <td style="padding:12px 0;color:#111827;font-weight:bold;font-size:16px;text-align:right;">{{.Value}}</td>
        </tr>
        {{end}}
      </table>
      {{end}}
      {{if .ButtonURL}}
      <div style="text-align:center;margin:32px 0 24px;">
        <a href="{{.ButtonURL}}" style="display:inline-block;background-color:{{.PrimaryColor}};color:#ffffff;padding:16px 32px;border-radius:12px;font-weight:bold;font-size:14px;text-decoration:none;">{{.ButtonText}}</a>
      </div>
      {{end}}
      <hr style="border:none;border-top:1px solid #e5e7eb;margin:32px 0;">
      <p style="color:#9ca3af;font-size:12px;line-height:1.5;margin:0;">{{.Footer}}</p>
      {{if .Signature}}
      <p style="color:#111827;font-weight:bold;font-size:14px;text-align:center;margin:24px 0 0 0;">{{.Signature}}</p>
      {{end}}
    </div>
    {{if .CompanyName}}
    <div style="text-align:center;margin-top:32px;">
      <p style="color:#9ca3af;font-size:12px;margin:0;">© {{.Year}} {{.CompanyName}}. Tüm hakları saklıdır.</p>
    </div>
    {{end}}
  </div>
</body>
</html>`
