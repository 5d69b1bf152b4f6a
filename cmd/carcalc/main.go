package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/KarimF430/Assad-motors-sub000/internal/config"
	"github.com/KarimF430/Assad-motors-sub000/internal/geo"
	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/KarimF430/Assad-motors-sub000/internal/pricing"
	"github.com/KarimF430/Assad-motors-sub000/internal/repository"
	"github.com/KarimF430/Assad-motors-sub000/internal/service"
	"github.com/KarimF430/Assad-motors-sub000/internal/utils"
	"github.com/KarimF430/Assad-motors-sub000/internal/variant"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// newService wires the same service the API uses, backed by the demo catalog
func newService(ctx context.Context, logger *logrus.Logger) (*service.Service, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	catalog := repository.NewMemoryCatalog()
	if err := repository.SeedDemo(ctx, catalog); err != nil {
		return nil, err
	}
	policy, err := pricing.LoadPolicyFile(cfg.TaxPolicyPath)
	if err != nil {
		return nil, err
	}
	cities, err := geo.Cities()
	if err != nil {
		return nil, err
	}
	rates := service.NewRateBook(cfg.DefaultRatePercent)
	return service.NewService(catalog, policy, cities, rates, nil, logger, cfg), nil
}

// parseVariant reads "Name:price", splitting on the last colon so names may contain one
func parseVariant(s string) (models.Variant, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return models.Variant{}, fmt.Errorf("variant %q must look like Name:price", s)
	}
	price, err := strconv.ParseInt(strings.TrimSpace(s[i+1:]), 10, 64)
	if err != nil || price <= 0 {
		return models.Variant{}, fmt.Errorf("variant %q has an invalid price", s)
	}
	return models.Variant{Name: strings.TrimSpace(s[:i]), Price: models.Money(price)}, nil
}

func newApp(out io.Writer, logger *logrus.Logger) *cli.Command {
	var svc *service.Service

	return &cli.Command{
		Name:   "carcalc",
		Usage:  "offline car finance and catalog utilities",
		Writer: out,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			var err error
			svc, err = newService(ctx, logger)
			return ctx, err
		},
		Commands: []*cli.Command{
			{
				Name:  "emi",
				Usage: "compute the monthly installment and repayment schedule",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "price",
						Usage:    "ex-showroom price in rupees",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "down",
						Usage: "down payment in rupees",
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "annual interest rate in percent (defaults to the reference rate)",
					},
					&cli.IntFlag{
						Name:  "tenure",
						Usage: "tenure in months",
						Value: 60,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					req := models.EMIQuoteRequest{
						ExShowroom:   models.Money(cmd.Int("price")),
						DownPayment:  models.Money(cmd.Int("down")),
						TenureMonths: int(cmd.Int("tenure")),
					}
					if cmd.IsSet("rate") {
						rate := cmd.Float("rate")
						req.AnnualRatePercent = &rate
					}

					quote, err := svc.QuoteEMI(req)
					if err != nil {
						return err
					}

					w := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
					fmt.Fprintf(w, "Loan amount\t%s\n", utils.FormatINR(quote.Terms.Principal))
					fmt.Fprintf(w, "Rate\t%.2f%% for %d months\n", quote.Terms.AnnualRatePercent, quote.Terms.TenureMonths)
					fmt.Fprintf(w, "Monthly EMI\t%s\n", utils.FormatINR(quote.MonthlyEMI))
					fmt.Fprintf(w, "Total interest\t%s\n", utils.FormatINR(quote.TotalInterest))
					fmt.Fprintf(w, "Total payable\t%s\n\n", utils.FormatINR(quote.TotalPayable))
					fmt.Fprintln(w, "Month\tPrincipal paid\tInterest paid\tBalance")
					for _, row := range quote.Schedule {
						fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", row.MonthsElapsed,
							utils.FormatINR(row.CumulativePrincipalPaid),
							utils.FormatINR(row.CumulativeInterestPaid),
							utils.FormatINR(row.RemainingBalance))
					}
					return w.Flush()
				},
			},
			{
				Name:  "nearby",
				Usage: "list reference cities near a city",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "city",
						Usage:    "city slug, e.g. mumbai",
						Required: true,
					},
					&cli.FloatFlag{
						Name:  "radius",
						Usage: "search radius in km",
						Value: service.DefaultRadiusKm,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of cities",
						Value: service.DefaultLimit,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cities, err := svc.NearbyCities(cmd.String("city"), cmd.Float("radius"), int(cmd.Int("limit")))
					if err != nil {
						return err
					}

					w := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
					for _, c := range cities {
						fmt.Fprintf(w, "%s\t%s\t%.1f km\n", c.Slug, c.Name, c.DistanceKm)
					}
					return w.Flush()
				},
			},
			{
				Name:  "resolve",
				Usage: "match a URL slug against a list of variants",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "slug",
						Usage:    "URL slug fragment",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "variant",
						Usage:    "variant as Name:price, repeatable",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					var variants []models.Variant
					for _, raw := range cmd.StringSlice("variant") {
						v, err := parseVariant(raw)
						if err != nil {
							return err
						}
						variants = append(variants, v)
					}

					match, ok := variant.Resolve(variants, cmd.String("slug"))
					if !ok {
						return fmt.Errorf("no variants to match")
					}
					fmt.Fprintf(cmd.Root().Writer, "%s (%s) via %s match\n",
						match.Variant.Name, utils.FormatINR(match.Variant.Price), match.Tier)
					return nil
				},
			},
			{
				Name:  "onroad",
				Usage: "price a demo catalog variant on-road in a city",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "brand", Required: true},
					&cli.StringFlag{Name: "model", Required: true},
					&cli.StringFlag{Name: "variant", Required: true},
					&cli.StringFlag{Name: "city", Value: "mumbai"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					breakup, err := svc.OnRoadPrice(ctx, cmd.String("brand"), cmd.String("model"),
						cmd.String("variant"), cmd.String("city"))
					if err != nil {
						return err
					}

					w := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
					fmt.Fprintf(w, "%s (%s, %s)\n", breakup.Variant, breakup.FuelType, breakup.Region)
					fmt.Fprintf(w, "Ex-showroom\t%s\n", utils.FormatINR(breakup.ExShowroom))
					for _, item := range breakup.Items {
						fmt.Fprintf(w, "%s\t%s\n", item.Label, utils.FormatINR(item.Amount))
					}
					fmt.Fprintf(w, "On-road\t%s (%s)\n", utils.FormatINR(breakup.OnRoad), utils.FormatLakh(breakup.OnRoad))
					return w.Flush()
				},
			},
			{
				Name:      "canonicalize",
				Usage:     "print the comparison key for a variant name or slug",
				ArgsUsage: "<text>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("text argument is required")
					}
					fmt.Fprintln(cmd.Root().Writer, variant.Canonicalize(strings.Join(cmd.Args().Slice(), " ")))
					return nil
				},
			},
		},
	}
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, logger).Run(ctx, os.Args); err != nil {
		logger.Fatal(err)
	}
}
