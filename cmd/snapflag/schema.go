package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) schemaCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Validate the schema and print the declared flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc, err := encoderFor(output)
			if err != nil {
				return err
			}
			schema, err := c.loadSchema()
			if err != nil {
				return err
			}
			c.log.Debug("schema declares %d flags", schema.Len())
			return enc.encodeSchema(cmd.OutOrStdout(), schema)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json, yaml or toml")
	return cmd
}
