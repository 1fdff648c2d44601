package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/interfaces"
	"github.com/marketplace/invoicing/internal/logger"
	"github.com/marketplace/invoicing/internal/server"
	"github.com/marketplace/invoicing/internal/services"
	"github.com/marketplace/invoicing/internal/types/api/params"
)

// serviceFactory builds the invoice service for commands that touch stored invoices.
type serviceFactory func(ctx context.Context) (interfaces.InvoiceService, func(), error)

func main() {
	app := newApp(bootstrapService)
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func bootstrapService(ctx context.Context) (interfaces.InvoiceService, func(), error) {
	cfg, err := server.Bootstrap(ctx)
	if err != nil {
		return nil, nil, err
	}
	store, pool, err := server.NewStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if pool == nil {
		logger.Warn("No DATABASE_URL configured, invoices will not outlive this command")
	}

	svc, err := server.NewInvoiceService(ctx, cfg, store)
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, nil, err
	}

	cleanup := func() {
		if pool != nil {
			pool.Close()
		}
		_ = logger.Sync()
	}
	return svc, cleanup, nil
}

func newApp(newService serviceFactory) *cli.App {
	userFlag := &cli.StringFlag{
		Name:     "user",
		Usage:    "acting user id",
		EnvVars:  []string{"INVOICE_USER_ID"},
		Required: true,
	}
	idFlag := &cli.StringFlag{
		Name:     "id",
		Usage:    "invoice id",
		Required: true,
	}
	itemFlag := &cli.StringSliceFlag{
		Name:     "item",
		Usage:    "line item as description:quantity:unit_price (repeatable)",
		Required: true,
	}
	taxFlag := &cli.Float64Flag{
		Name:  "tax",
		Usage: "tax rate in percent",
	}

	withService := func(action func(c *cli.Context, svc interfaces.InvoiceService) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			svc, cleanup, err := newService(c.Context)
			if err != nil {
				return err
			}
			defer cleanup()
			return action(c, svc)
		}
	}

	return &cli.App{
		Name:  "invoicectl",
		Usage: "compose, render and send marketplace invoices",
		Commands: []*cli.Command{
			{
				Name:  "preview",
				Usage: "compute totals for unsaved line items",
				Flags: []cli.Flag{itemFlag, taxFlag},
				Action: func(c *cli.Context) error {
					items, err := parseItems(c.StringSlice("item"))
					if err != nil {
						return err
					}
					totals, err := services.NewInvoiceService(services.InvoiceServiceConfig{}).PreviewInvoice(c.Context, params.PreviewInvoiceParams{
						Items:   items,
						TaxRate: c.Float64("tax"),
					})
					if err != nil {
						return err
					}
					return printJSON(c.App.Writer, displayTotals(totals.Subtotal, totals.TaxAmount, totals.Total))
				},
			},
			{
				Name:  "create",
				Usage: "create a draft invoice",
				Flags: []cli.Flag{
					userFlag, itemFlag, taxFlag,
					&cli.StringFlag{Name: "email", Usage: "recipient email", Required: true},
					&cli.StringFlag{Name: "name", Usage: "recipient name"},
					&cli.StringFlag{Name: "title", Usage: "invoice title"},
					&cli.StringFlag{Name: "type", Usage: "sale, rent, service or product"},
					&cli.StringFlag{Name: "listing", Usage: "listing id to seed the invoice from"},
					&cli.StringFlag{Name: "notes", Usage: "notes"},
					&cli.TimestampFlag{Name: "due", Usage: "due date", Layout: "2006-01-02"},
				},
				Action: withService(func(c *cli.Context, svc interfaces.InvoiceService) error {
					userID, err := uuid.Parse(c.String("user"))
					if err != nil {
						return fmt.Errorf("invalid --user: %w", err)
					}
					items, err := parseItems(c.StringSlice("item"))
					if err != nil {
						return err
					}

					p := params.CreateInvoiceParams{
						UserID:         userID,
						RecipientEmail: c.String("email"),
						RecipientName:  c.String("name"),
						Type:           c.String("type"),
						Title:          c.String("title"),
						Items:          items,
						TaxRate:        c.Float64("tax"),
						Notes:          c.String("notes"),
					}
					if raw := c.String("listing"); raw != "" {
						listingID, err := uuid.Parse(raw)
						if err != nil {
							return fmt.Errorf("invalid --listing: %w", err)
						}
						p.ListingID = &listingID
					}
					if due := c.Timestamp("due"); due != nil {
						d := due.UTC()
						p.DueDate = &d
					}

					invoice, err := svc.CreateInvoice(c.Context, p)
					if err != nil {
						return err
					}
					return printJSON(c.App.Writer, invoice)
				}),
			},
			{
				Name:  "totals",
				Usage: "show the stored totals of an invoice",
				Flags: []cli.Flag{userFlag, idFlag},
				Action: withService(func(c *cli.Context, svc interfaces.InvoiceService) error {
					userID, invoiceID, err := parseIDs(c)
					if err != nil {
						return err
					}
					totals, err := svc.GetInvoiceTotals(c.Context, userID, invoiceID)
					if err != nil {
						return err
					}
					return printJSON(c.App.Writer, displayTotals(totals.Subtotal, totals.TaxAmount, totals.Total))
				}),
			},
			{
				Name:  "render",
				Usage: "render the invoice artifact",
				Flags: []cli.Flag{userFlag, idFlag},
				Action: withService(func(c *cli.Context, svc interfaces.InvoiceService) error {
					userID, invoiceID, err := parseIDs(c)
					if err != nil {
						return err
					}
					invoice, err := svc.RenderInvoice(c.Context, userID, invoiceID)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, invoice.PdfURL)
					return err
				}),
			},
			{
				Name:  "send",
				Usage: "email the invoice to its recipient",
				Flags: []cli.Flag{userFlag, idFlag, &cli.StringFlag{Name: "message", Usage: "message for the recipient"}},
				Action: withService(func(c *cli.Context, svc interfaces.InvoiceService) error {
					userID, invoiceID, err := parseIDs(c)
					if err != nil {
						return err
					}
					result, err := svc.SendInvoice(c.Context, params.SendInvoiceParams{
						UserID:    userID,
						InvoiceID: invoiceID,
						Message:   c.String("message"),
					})
					if err != nil {
						return err
					}
					return printJSON(c.App.Writer, result)
				}),
			},
			{
				Name:  "download",
				Usage: "print the artifact URL",
				Flags: []cli.Flag{userFlag, idFlag},
				Action: withService(func(c *cli.Context, svc interfaces.InvoiceService) error {
					userID, invoiceID, err := parseIDs(c)
					if err != nil {
						return err
					}
					url, err := svc.DownloadArtifact(c.Context, userID, invoiceID)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, url)
					return err
				}),
			},
			{
				Name:  "migrate",
				Usage: "apply the database schema",
				Action: func(c *cli.Context) error {
					cfg, err := server.Bootstrap(c.Context)
					if err != nil {
						return err
					}
					if cfg.DatabaseURL == "" {
						return fmt.Errorf("DATABASE_URL is required to migrate")
					}
					ctx, cancel := context.WithTimeout(c.Context, time.Minute)
					defer cancel()

					// NewStore applies the embedded schema when it opens the pool.
					_, pool, err := server.NewStore(ctx, cfg)
					if err != nil {
						return err
					}
					defer pool.Close()
					logger.Info("Schema applied", zap.String("stage", cfg.Stage))
					return nil
				},
			},
		},
	}
}

func parseIDs(c *cli.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := uuid.Parse(c.String("user"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid --user: %w", err)
	}
	invoiceID, err := uuid.Parse(c.String("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid --id: %w", err)
	}
	return userID, invoiceID, nil
}

type totalsOutput struct {
	Subtotal  string `json:"subtotal"`
	TaxAmount string `json:"tax_amount"`
	Total     string `json:"total"`
}

func displayTotals(subtotal, tax, total float64) totalsOutput {
	return totalsOutput{
		Subtotal:  services.FormatMoney(subtotal),
		TaxAmount: services.FormatMoney(tax),
		Total:     services.FormatMoney(total),
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
