package commands

import (
	"fmt"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

// TaxCommandHandler resolves tax rates against a JSON export of the tax rate table.
type TaxCommandHandler struct {
	logger logger.Logger
}

// NewTaxCommandHandler initializes a TaxCommandHandler with a console logger
func NewTaxCommandHandler() (*TaxCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &TaxCommandHandler{logger: loggerInstance}, nil
}

// loadTaxRates reads an array of tax rates. Entries without created_at keep their file order
// for tie-breaking and entries without is_active are treated as active.
func loadTaxRates(path string) ([]*tax.TaxRate, error) {
	doc, err := readJSONFile(path)
	if err != nil {
		return nil, err
	}
	if !doc.IsArray() {
		return nil, fmt.Errorf("%s must hold a JSON array of tax rates", path)
	}

	epoch := time.Unix(0, 0).UTC()
	var rates []*tax.TaxRate
	var parseErr error
	doc.ForEach(func(key, item gjson.Result) bool {
		rate, err := decimal.NewFromString(item.Get("rate").String())
		if err != nil {
			parseErr = fmt.Errorf("tax rate %d: invalid rate %q", key.Int(), item.Get("rate").String())
			return false
		}

		createdAt := epoch.Add(time.Duration(key.Int()) * time.Second)
		if v := item.Get("created_at"); v.Exists() {
			if createdAt, err = time.Parse(time.RFC3339, v.String()); err != nil {
				parseErr = fmt.Errorf("tax rate %d: invalid created_at: %w", key.Int(), err)
				return false
			}
		}

		active := item.Get("is_active")
		rates = append(rates, &tax.TaxRate{
			ID:              item.Get("id").String(),
			Name:            item.Get("name").String(),
			Country:         item.Get("country").String(),
			ProductCategory: item.Get("product_category").String(),
			Rate:            rate,
			IsDefault:       item.Get("is_default").Bool(),
			IsActive:        !active.Exists() || active.Bool(),
			CreatedAt:       createdAt,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return rates, nil
}

// ResolveTaxCmd prints the rate applying to a country and product category
func (commandHandler *TaxCommandHandler) ResolveTaxCmd(cmd *cobra.Command, _ []string) error {
	ratesFile, _ := cmd.Flags().GetString("rates-file")
	country, _ := cmd.Flags().GetString("country")
	category, _ := cmd.Flags().GetString("category")

	rates, err := loadTaxRates(ratesFile)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	res := tax.Resolve(rates, country, category)
	fmt.Fprintf(cmd.OutOrStdout(), "rate=%s source=%s name=%q\n", res.Rate.String(), res.Source, res.Name)
	return nil
}

// CalculateTaxCmd prints the tax due on an amount
func (commandHandler *TaxCommandHandler) CalculateTaxCmd(cmd *cobra.Command, _ []string) error {
	ratesFile, _ := cmd.Flags().GetString("rates-file")
	country, _ := cmd.Flags().GetString("country")
	category, _ := cmd.Flags().GetString("category")
	rawAmount, _ := cmd.Flags().GetString("amount")

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", rawAmount)
	}

	rates, err := loadTaxRates(ratesFile)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	res := tax.Resolve(rates, country, category)
	taxAmount, err := tax.Calculate(amount, res.Rate)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "amount=%s tax=%s total=%s rate=%s source=%s\n",
		amount.StringFixed(2), taxAmount.StringFixed(2), amount.Add(taxAmount).StringFixed(2), res.Rate.String(), res.Source)
	return nil
}

// InitTaxCommands registers the tax sub-commands
func InitTaxCommands(rootCmd *cobra.Command) error {
	handler, err := NewTaxCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create tax command handler %w", err)
	}

	taxCmd := &cobra.Command{
		Use:   "tax",
		Short: "Resolve and calculate sales tax",
	}
	taxCmd.PersistentFlags().String("rates-file", "", "Path to a JSON array of tax rates")
	taxCmd.PersistentFlags().String("country", "", "ISO 3166-1 alpha-2 destination country")
	taxCmd.PersistentFlags().String("category", "", "Product category")

	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show the tax rate that applies to a sale",
		RunE:  handler.ResolveTaxCmd,
	}
	taxCmd.AddCommand(resolveCmd)

	calculateCmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the tax due on an amount",
		RunE:  handler.CalculateTaxCmd,
	}
	calculateCmd.Flags().String("amount", "", "Taxable amount")
	taxCmd.AddCommand(calculateCmd)

	rootCmd.AddCommand(taxCmd)
	return nil
}
