package services

import (
	"go.uber.org/zap"

	"github.com/estatehub/buyer-intake/repositories"
)

// Services holds all service instances.
type Services struct {
	Buyers  BuyerService
	History HistoryService
}

// NewServices creates and initializes all service instances.
func NewServices(repos *repositories.Repositories, logger *zap.Logger) *Services {
	history := NewHistoryService(repos.History)
	return &Services{
		Buyers:  NewBuyerService(repos.Buyers, repos.Users, history, repos, logger),
		History: history,
	}
}
