package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/entities/commissions"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/entities/funnels"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/entities/goals"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/entities/opportunities"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/entities/purchases"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/entities/stats"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/middlewares"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	utils.LoadEnvVariables()

	env := os.Getenv(utils.ENV)
	if env == utils.ENV_RELEASE {
		fmt.Printf("\033[1;31;47m[ATENÇÃO] Rodando em ambiente de PRODUÇÃO!\033[0m\n")
	} else {
		fmt.Printf("[INFO] Ambiente atual: %s\n", env)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic("Erro ao iniciar o logger: " + err.Error())
	}
	defer logger.Sync()

	mux := http.NewServeMux()

	mux.Handle("GET /v1/funnels", middlewares.SessionAuth(http.HandlerFunc(funnels.GetAll)))
	mux.Handle("GET /v1/funnels/{id}", middlewares.SessionAuth(http.HandlerFunc(funnels.GetOne)))
	mux.Handle("POST /v1/funnels", middlewares.SessionAuth(http.HandlerFunc(funnels.CreateOne)))
	mux.Handle("PATCH /v1/funnels/{id}", middlewares.SessionAuth(http.HandlerFunc(funnels.UpdateOne)))
	mux.Handle("DELETE /v1/funnels/{id}", middlewares.SessionAuth(http.HandlerFunc(funnels.DeleteOne)))
	mux.HandleFunc("/v1/ws/funnels", funnels.FunnelWebSocketHandler)

	mux.Handle("GET /v1/opportunities", middlewares.SessionAuth(http.HandlerFunc(opportunities.GetAll)))
	mux.Handle("GET /v1/opportunities/export", middlewares.SessionAuth(http.HandlerFunc(opportunities.Export)))
	mux.Handle("GET /v1/opportunities/{id}", middlewares.SessionAuth(http.HandlerFunc(opportunities.GetOne)))
	mux.Handle("POST /v1/opportunities/{id}/win", middlewares.SessionAuth(http.HandlerFunc(opportunities.Win)))

	mux.Handle("POST /v1/stats/funis", middlewares.SessionAuth(http.HandlerFunc(stats.GetFunnelStats)))
	mux.Handle("POST /v1/stats/comercial/geral", middlewares.SessionAuth(http.HandlerFunc(stats.GetOverallStats)))
	mux.Handle("POST /v1/stats/comercial/regiao", middlewares.SessionAuth(http.HandlerFunc(stats.GetStatsByRegion)))
	mux.Handle("POST /v1/stats/comercial/vendedor", middlewares.SessionAuth(http.HandlerFunc(stats.GetStatsBySeller)))
	mux.Handle("POST /v1/stats/comercial/sdr", middlewares.SessionAuth(http.HandlerFunc(stats.GetStatsBySDR)))
	mux.Handle("POST /v1/stats/comercial/promotor", middlewares.SessionAuth(http.HandlerFunc(stats.GetStatsByPromoter)))

	mux.Handle("GET /v1/sale-goals", middlewares.SessionAuth(http.HandlerFunc(goals.GetAll)))
	mux.Handle("GET /v1/sale-goals/{id}", middlewares.SessionAuth(http.HandlerFunc(goals.GetOne)))
	mux.Handle("POST /v1/sale-goals", middlewares.SessionAuth(http.HandlerFunc(goals.CreateOne)))
	mux.Handle("PATCH /v1/sale-goals/{id}", middlewares.SessionAuth(http.HandlerFunc(goals.UpdateOne)))
	mux.Handle("DELETE /v1/sale-goals/{id}", middlewares.SessionAuth(http.HandlerFunc(goals.DeleteOne)))

	mux.Handle("GET /v1/commissions/scenarios", middlewares.SessionAuth(http.HandlerFunc(commissions.GetScenarios)))
	mux.Handle("POST /v1/commissions/compute", middlewares.SessionAuth(http.HandlerFunc(commissions.Compute)))

	mux.Handle("GET /v1/purchases/old/{id}", middlewares.SessionAuth(http.HandlerFunc(purchases.GetOneOldHandler)))

	mux.Handle("GET /metrics", promhttp.Handler())

	fmt.Printf("Servidor iniciado na porta %s às %s\n", os.Getenv(utils.PORT), time.Now().Format("2006-01-02 15:04:05"))
	http.ListenAndServe(fmt.Sprintf(":%s", os.Getenv(utils.PORT)), middlewares.Cors(middlewares.Logging(logger, middlewares.Metrics(mux))))
}
