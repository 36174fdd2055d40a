package schemas

import "database/sql"

// PurchaseOld espelha a tabela compras do ERP legado em MySQL.
type PurchaseOld struct {
	ID             int             `json:"id"`
	IDVendedor     sql.NullInt64   `json:"idVendedor"`
	NomeCliente    sql.NullString  `json:"nomeCliente"`
	TelefoneOcta   sql.NullString  `json:"telefoneOcta"`
	ListaProdutos  sql.NullString  `json:"listaProdutos"`
	ValorTotal     sql.NullFloat64 `json:"valorTotal"`
	PotenciaPico   sql.NullFloat64 `json:"potenciaPico"`
	CidadeEntrega  sql.NullString  `json:"cidadeEntrega"`
	UFEntrega      sql.NullString  `json:"ufEntrega"`
	DataVenda      sql.NullString  `json:"dataVenda"`
	DataCriacao    sql.NullString  `json:"dataCriacao"`
	DataAtualizada sql.NullString  `json:"dataAtualizada"`
}
