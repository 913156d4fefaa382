package service

import (
	"fmt"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/model"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/repository"
)

// StatisticsService computes portfolio summary metrics over the ledger.
type StatisticsService struct {
	transactionRepo *repository.TransactionRepository
}

// NewStatisticsService creates a new StatisticsService with the provided repository dependency.
func NewStatisticsService(
	transactionRepo *repository.TransactionRepository,
) *StatisticsService {
	return &StatisticsService{
		transactionRepo: transactionRepo,
	}
}

// GetStatistics reads a point-in-time snapshot of the ledger and folds it
// into summary metrics. An empty ledger yields all-zero statistics.
func (s *StatisticsService) GetStatistics() (model.Statistics, error) {
	transactions, err := s.transactionRepo.ListTransactions()
	if err != nil {
		return model.Statistics{}, fmt.Errorf("failed to load transactions for statistics: %w", err)
	}

	return CalculateStatistics(transactions), nil
}

// CalculateStatistics folds an ordered sequence of transactions into portfolio
// summary metrics in a single pass.
//
// Realized P/L is totalProceeds - totalInvested - totalFees, with fees on both
// buys and sells counted as a deduction. CryptoBalances gets an entry for every
// distinct symbol seen; balances go negative when sells exceed recorded buys.
func CalculateStatistics(transactions []model.Transaction) model.Statistics {
	stats := model.Statistics{
		TotalTransactions: len(transactions),
		CryptoBalances:    make(map[string]float64),
	}

	for _, tx := range transactions {
		stats.TotalFees += tx.Fees

		if _, ok := stats.CryptoBalances[tx.Crypto]; !ok {
			stats.CryptoBalances[tx.Crypto] = 0
		}

		if tx.Type == model.TypeBuy {
			stats.TotalInvested += tx.TotalValue
			stats.CryptoBalances[tx.Crypto] += tx.Amount
		} else {
			stats.TotalProceeds += tx.TotalValue
			stats.CryptoBalances[tx.Crypto] -= tx.Amount
		}
	}

	stats.RealizedPL = stats.TotalProceeds - stats.TotalInvested - stats.TotalFees

	return stats
}
