package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/coregx/basemem/internal/image"
	"github.com/coregx/basemem/internal/signature"
)

var (
	findRegion  regionFlags
	findDumpCat bool
)

var findCmd = &cobra.Command{
	Use:   "find FILE",
	Short: "Locate known firmware signatures in an image",
	Long: `Search the selected region for firmware structure signatures such as
UEFI firmware volume headers, SMBIOS entry points and the ACPI RSDP.

A YAML catalog passed with --signatures replaces the built-in list. Use
--dump-catalog to print the built-in catalog as a starting point.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if findDumpCat {
			doc, err := signature.Builtin().Marshal()
			if err != nil {
				return err
			}
			_, err = out.Write(doc)
			return err
		}
		if len(args) != 1 {
			return cobra.ExactArgs(1)(cmd, args)
		}

		catalog := signature.Builtin()
		if path := viper.GetString(configSignatures); path != "" {
			c, err := signature.Load(path)
			if err != nil {
				return err
			}
			catalog = c
		}
		m, err := signature.NewMatcher(catalog)
		if err != nil {
			return err
		}

		region, err := findRegion.load(args[0])
		if err != nil {
			return err
		}
		base, err := image.ParseSize(findRegion.offset)
		if err != nil {
			return err
		}

		hits := m.FindAllAt(region, int(base))
		klog.V(1).Infof("%d signature hits in %s", len(hits), args[0])
		for _, h := range hits {
			fmt.Fprintf(out, "%#08x %s\n", h.Offset, h.Name)
		}
		return nil
	},
}

func init() {
	findRegion.register(findCmd)
	findCmd.Flags().String(configSignatures, "", "YAML signature catalog (default: built-in list)")
	findCmd.Flags().BoolVar(&findDumpCat, "dump-catalog", false, "print the built-in catalog as YAML and exit")
	if err := viper.BindPFlag(configSignatures, findCmd.Flags().Lookup(configSignatures)); err != nil {
		klog.Fatalf("bind %s: %v", configSignatures, err)
	}
}
