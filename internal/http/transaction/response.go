package transaction

import (
	"time"

	"pennyledger/internal/money"
	"pennyledger/internal/transaction"
)

type transactionResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Amount      money.Amount     `json:"amount"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category"`
	Date        string           `json:"date"`
	CreatedAt   time.Time        `json:"created_at,omitzero"`
}

type createTransactionResponse struct {
	Transaction transactionResponse `json:"transaction"`
	Warnings    map[string][]string `json:"warnings,omitempty"`
}

func toResponse(tx transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        tx.TypeOf(),
		Category:    tx.Category,
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
	}
}

func toResponseList(txs []transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
