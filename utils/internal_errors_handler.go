package utils

import "fmt"

const (
	STATS_INVALID_REQUEST_DATA = iota + 1
	CANNOT_CONNECT_TO_MONGODB
	CANNOT_CONNECT_TO_MYSQL
	ERROR_TO_FIND_IN_MONGODB
	ERROR_TO_INSERT_IN_MONGODB
	ERROR_TO_UPDATE_IN_MONGODB
	ERROR_TO_DELETE_IN_MONGODB
	CANNOT_FIND_OPPORTUNITY_BY_ID
	CANNOT_FIND_FUNNEL_BY_ID
	CANNOT_FIND_SALE_GOAL_BY_ID
	CANNOT_FIND_COMMISSION_SCENARIOS
	CANNOT_FIND_PURCHASE_IN_MYSQL
	OPPORTUNITY_EXPORT_FAILED
	COMMISSION_FORMULA_INVALID
	FUNNELS_INVALID_REQUEST_DATA
	INVALID_FUNNEL_ID_FORMAT
	CANNOT_INSERT_FUNNEL_TO_MONGODB
	CANNOT_UPDATE_FUNNEL_IN_MONGODB
	CANNOT_DELETE_FUNNEL_FROM_MONGODB
	SALE_GOALS_INVALID_REQUEST_DATA
	INVALID_SALE_GOAL_ID_FORMAT
	NOT_FOUND
)

func SendInternalError(internalErrorCode int) string {
	return fmt.Sprintf("Ocorreu um erro interno no servidor. Por favor, tente novamene mais tarde (Cod: %d)", internalErrorCode)
}
