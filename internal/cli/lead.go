package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// NewQuoteCmd создаёт группу команд для просмотра запросов предложений.
func NewQuoteCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Inspect quote requests",
	}

	cmd.AddCommand(
		newQuoteListCmd(clientFn, outputFn),
		newQuoteShowCmd(clientFn, outputFn),
	)

	return cmd
}

// NewContactCmd создаёт группу команд для просмотра сообщений обратной связи.
func NewContactCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Inspect contact messages",
	}

	cmd.AddCommand(
		newContactListCmd(clientFn, outputFn),
		newContactShowCmd(clientFn, outputFn),
	)

	return cmd
}

var quoteHeaders = []string{"ID", "NAME", "EMAIL", "PRODUCT", "STATUS", "ATTEMPTS", "CREATED"}

func quoteRow(q QuoteResponse) []string {
	return []string{
		q.ID,
		truncate(q.Name, 30),
		q.Email,
		truncate(q.Product, 30),
		q.Status,
		strconv.Itoa(q.Attempts),
		q.CreatedAt,
	}
}

var contactHeaders = []string{"ID", "NAME", "EMAIL", "INTEREST", "STATUS", "ATTEMPTS", "CREATED"}

func contactRow(c ContactResponse) []string {
	return []string{
		c.ID,
		truncate(c.Name, 30),
		c.Email,
		truncate(c.Interest, 30),
		c.Status,
		strconv.Itoa(c.Attempts),
		c.CreatedAt,
	}
}

func leadListFlags(cmd *cobra.Command, opts *ListLeadsOpts) {
	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status (NEW/NOTIFIED)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Limit results")
}

func newQuoteListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var opts ListLeadsOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quote requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			quotes, err := client.ListQuotes(opts)
			if err != nil {
				return err
			}

			rows := make([][]string, len(quotes))
			for i, q := range quotes {
				rows[i] = quoteRow(q)
			}

			out.Print(quoteHeaders, rows, quotes)
			return nil
		},
	}

	leadListFlags(cmd, &opts)
	return cmd
}

func newQuoteShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show quote request details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			quote, err := client.GetQuote(args[0])
			if err != nil {
				return err
			}

			out.Print(quoteHeaders, [][]string{quoteRow(*quote)}, quote)
			return nil
		},
	}
}

func newContactListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var opts ListLeadsOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contact messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			contacts, err := client.ListContacts(opts)
			if err != nil {
				return err
			}

			rows := make([][]string, len(contacts))
			for i, c := range contacts {
				rows[i] = contactRow(c)
			}

			out.Print(contactHeaders, rows, contacts)
			return nil
		},
	}

	leadListFlags(cmd, &opts)
	return cmd
}

func newContactShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show contact message details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			contact, err := client.GetContact(args[0])
			if err != nil {
				return err
			}

			out.Print(contactHeaders, [][]string{contactRow(*contact)}, contact)
			return nil
		},
	}
}
