package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/BennersTaga/shift-management-app/internal/config"
	"github.com/BennersTaga/shift-management-app/internal/remote"
	"github.com/BennersTaga/shift-management-app/internal/repository"
	"github.com/BennersTaga/shift-management-app/internal/session"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	remote      *remote.Client
	sessions    *session.Manager

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, rc *remote.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	ja := ja.New()
	uni := ut.New(ja, ja)
	trans, _ := uni.GetTranslator("ja")
	if err := ja_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		remote:      rc,
		sessions:    session.NewManager(),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 従業員ディレクトリ（取得失敗時はフォールバックを返す）
	h.Mux.Get("/employees", h.GetEmployees)

	// 入力期間などのシステム設定。更新は管理者のみ
	h.Mux.Route("/system-settings", func(r chi.Router) {
		r.Get("/", h.GetSystemSettings)
		r.With(h.adminOnly).Put("/", h.UpdateSystemSettings)
	})

	// シフト管理画面（提出済みシフトのタイムライン）
	h.Mux.Get("/timeline", h.GetTimeline)

	h.Mux.Post("/sessions", h.StartSession)

	// 以下の API はセッション開始後のみ呼び出せる
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Route("/sessions/active-employee", func(r chi.Router) {
			r.Post("/", h.SelectEmployee)
			r.Delete("/", h.DeselectEmployee)
		})

		r.Get("/input-window", h.GetInputWindow)

		r.Route("/my-shifts", func(r chi.Router) {
			r.Get("/", h.GetMyShifts)
			r.Put("/{date}", h.AssignShift)
			r.Get("/total-hours", h.GetTotalHours)
			r.Route("/review", func(r chi.Router) {
				r.Post("/", h.BeginReview)
				r.Delete("/", h.CancelReview)
			})
			r.Post("/submit", h.SubmitShifts)
		})
	})
}
