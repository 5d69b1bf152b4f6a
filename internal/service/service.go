package service

import (
	"github.com/KarimF430/Assad-motors-sub000/internal/config"
	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/KarimF430/Assad-motors-sub000/internal/pricing"
	"github.com/KarimF430/Assad-motors-sub000/internal/repository"
	"github.com/sirupsen/logrus"
)

// QuoteMailer delivers EMI quotes to leads
type QuoteMailer interface {
	SendQuote(to, name string, q models.EMIQuote) error
}

// Service handles business logic around the finance, geo and catalog utilities
type Service struct {
	catalog repository.CatalogRepository
	policy  pricing.Policy
	cities  []models.GeoPoint
	rates   *RateBook
	mailer  QuoteMailer
	log     *logrus.Logger
	config  *config.Config
}

// NewService initializes a new service
func NewService(
	catalog repository.CatalogRepository,
	policy pricing.Policy,
	cities []models.GeoPoint,
	rates *RateBook,
	mailer QuoteMailer,
	log *logrus.Logger,
	cfg *config.Config,
) *Service {
	return &Service{
		catalog: catalog,
		policy:  policy,
		cities:  cities,
		rates:   rates,
		mailer:  mailer,
		log:     log,
		config:  cfg,
	}
}
