package commands

import (
	"fmt"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

// CurrencyCommandHandler converts amounts against a JSON export of exchange rates.
type CurrencyCommandHandler struct {
	logger logger.Logger
}

// NewCurrencyCommandHandler initializes a CurrencyCommandHandler with a console logger
func NewCurrencyCommandHandler() (*CurrencyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &CurrencyCommandHandler{logger: loggerInstance}, nil
}

// loadRateTable reads {"base": "NGN", "rates": {"USD": "0.00065", ...}}
func loadRateTable(path string) (*currency.RateTable, error) {
	doc, err := readJSONFile(path)
	if err != nil {
		return nil, err
	}
	base := doc.Get("base").String()
	if base == "" {
		return nil, fmt.Errorf("%s has no base currency", path)
	}

	var rates []*currency.ExchangeRate
	var parseErr error
	doc.Get("rates").ForEach(func(code, value gjson.Result) bool {
		rate, err := decimal.NewFromString(value.String())
		if err != nil {
			parseErr = fmt.Errorf("invalid rate for %s: %q", code.String(), value.String())
			return false
		}
		rates = append(rates, &currency.ExchangeRate{Currency: code.String(), Rate: rate})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return currency.NewRateTable(base, rates), nil
}

// ConvertCmd converts an amount between two currencies
func (commandHandler *CurrencyCommandHandler) ConvertCmd(cmd *cobra.Command, _ []string) error {
	ratesFile, _ := cmd.Flags().GetString("rates-file")
	rawAmount, _ := cmd.Flags().GetString("amount")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", rawAmount)
	}

	table, err := loadRateTable(ratesFile)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	if to == "" {
		to = table.Base
	}

	converted, err := table.Convert(amount, from, to)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), currency.Format(converted, strings.ToUpper(to)))
	return nil
}

// InitCurrencyCommands registers the currency sub-commands
func InitCurrencyCommands(rootCmd *cobra.Command) error {
	handler, err := NewCurrencyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create currency command handler %w", err)
	}

	currencyCmd := &cobra.Command{
		Use:   "currency",
		Short: "Convert between supported currencies",
	}

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount using a rates file",
		RunE:  handler.ConvertCmd,
	}
	convertCmd.Flags().String("rates-file", "", "Path to a JSON exchange rate table")
	convertCmd.Flags().String("amount", "", "Amount to convert")
	convertCmd.Flags().String("from", "", "Source currency code")
	convertCmd.Flags().String("to", "", "Target currency code (defaults to the base currency)")
	currencyCmd.AddCommand(convertCmd)

	rootCmd.AddCommand(currencyCmd)
	return nil
}
