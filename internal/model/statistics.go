package model

// Statistics summarizes the full transaction ledger.
//
// RealizedPL is proceeds minus invested capital minus all fees; there is no
// cost-basis lot matching. CryptoBalances holds the net amount per asset
// symbol and may go negative when sells exceed recorded buys.
type Statistics struct {
	TotalInvested     float64            `json:"totalInvested"`
	TotalProceeds     float64            `json:"totalProceeds"`
	TotalFees         float64            `json:"totalFees"`
	RealizedPL        float64            `json:"realizedPL"`
	TotalTransactions int                `json:"totalTransactions"`
	CryptoBalances    map[string]float64 `json:"cryptoBalances"`
}
