package database

import (
	"os"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"
)

const (
	MONGO_TIMEOUT                   = 20 * time.Second
	COLLECTION_OPPORTUNITIES        = "opportunities"
	COLLECTION_FUNNELS              = "funnels"
	COLLECTION_FUNNEL_REFERENCES    = "funnel-references"
	COLLECTION_PROPOSALS            = "proposals"
	COLLECTION_CLIENTS              = "clients"
	COLLECTION_USERS                = "users"
	COLLECTION_SESSIONS             = "sessions"
	COLLECTION_SALE_GOALS           = "sale-goals"
	COLLECTION_COMMISSION_SCENARIOS = "commission-scenarios"
	COLLECTION_INDICATIONS          = "indications"
	COLLECTION_PROJECT_TYPES        = "project-types"
)

func GetDB() string {
	environment := os.Getenv(utils.ENV)

	if environment == utils.ENV_RELEASE {
		return "production"
	}

	if environment == utils.ENV_HOMOLOG {
		return "homolog"
	}

	if environment == utils.ENV_DEVELOPMENT {
		return "development"
	}

	panic("[MongoDB] Invalid DB name")
}
