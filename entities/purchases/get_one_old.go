package purchases

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	_ "github.com/go-sql-driver/mysql"
)

func GetOneOld(oldId int) (*schemas.PurchaseOld, error) {
	mysqlURI := os.Getenv(utils.MYSQL_URI)

	mysqlDB, err := sql.Open("mysql", mysqlURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	defer mysqlDB.Close()

	mysqlDB.SetConnMaxLifetime(database.MYSQL_CONN_MAX_LIFETIME)
	mysqlDB.SetMaxOpenConns(database.MYSQL_MAX_OPEN_CONNS)
	mysqlDB.SetMaxIdleConns(database.MYSQL_MAX_IDLE_CONNS)

	purchase := schemas.PurchaseOld{}
	err = mysqlDB.QueryRow("SELECT * FROM compras WHERE id = ?", oldId).Scan(
		&purchase.ID,
		&purchase.IDVendedor,
		&purchase.NomeCliente,
		&purchase.TelefoneOcta,
		&purchase.ListaProdutos,
		&purchase.ValorTotal,
		&purchase.PotenciaPico,
		&purchase.CidadeEntrega,
		&purchase.UFEntrega,
		&purchase.DataVenda,
		&purchase.DataCriacao,
		&purchase.DataAtualizada,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchase from MySQL: %w", err)
	}

	return &purchase, nil
}

func GetOneOldHandler(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	oldId, err := strconv.Atoi(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "ID inválido", nil, 0)
		return
	}

	purchase, err := GetOneOld(oldId)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_PURCHASE_IN_MYSQL)
		return
	}

	if purchase == nil {
		utils.SendResponse(w, http.StatusNotFound, "Compra não encontrada", nil, utils.NOT_FOUND)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", purchase, 0)
}
