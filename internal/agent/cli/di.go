package cli

import (
	"github.com/alexmueller07/weather-stylist/internal/agent/api"
	"github.com/alexmueller07/weather-stylist/internal/server/crypto"
)

// для тестов
var (
	NewAPIClient     = api.NewClient
	NewDispatchToken = crypto.NewDispatchToken
)
