package cli

import (
	"strings"

	"github.com/mkproj/mkproj/pkg/edit"
	"github.com/mkproj/mkproj/pkg/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// nameDescriptor is the synthetic descriptor for the NAME positional, which
// pflag does not model.
func nameDescriptor() edit.Descriptor {
	return edit.Descriptor{
		TakesValue: true,
		Dest:       "name",
		Metavar:    "NAME",
		Help:       "name of the project directory to create",
	}
}

// optionDescriptors adapts every flag registered on cmd into the ordered
// descriptor list the options file is rendered from. The NAME positional
// leads; flags follow in registration order. Flags owned by an extension
// share the reserved "extensions" destination.
func optionDescriptors(cmd *cobra.Command, installed []scaffold.Extension) []edit.Descriptor {
	owned := make(map[string]bool, len(installed))
	for _, ext := range installed {
		owned[strings.TrimPrefix(ext.Flag(), "--")] = true
	}

	ds := []edit.Descriptor{nameDescriptor()}
	cmd.Flags().VisitAll(func(fl *pflag.Flag) {
		ds = append(ds, flagDescriptor(fl, owned[fl.Name]))
	})
	return ds
}

// flagDescriptor maps one pflag flag onto an option descriptor. The metavar
// comes from the backquoted name in the usage string; flags without one get
// their own name upper-cased.
func flagDescriptor(fl *pflag.Flag, extensionOwned bool) edit.Descriptor {
	var spellings []string
	if fl.Shorthand != "" {
		spellings = append(spellings, "-"+fl.Shorthand)
	}
	spellings = append(spellings, "--"+fl.Name)

	metavar, help := pflag.UnquoteUsage(fl)
	takesValue := fl.Value.Type() != "bool"
	if !takesValue {
		metavar = ""
	} else if metavar == "" || metavar == fl.Value.Type() {
		metavar = strings.ToUpper(strings.ReplaceAll(fl.Name, "-", "_"))
	}

	dest := strings.ReplaceAll(fl.Name, "-", "_")
	if extensionOwned {
		dest = "extensions"
	}

	return edit.Descriptor{
		Spellings:  spellings,
		TakesValue: takesValue,
		Dest:       dest,
		Metavar:    metavar,
		Help:       help,
	}
}

// flowValues maps fully bootstrapped options onto the destinations the
// descriptor list references. Unset string options stay absent so they render
// as commented placeholders rather than active empty values. The reserved
// "extensions" key lists the flags of the active extensions.
func flowValues(opts *scaffold.ProjectOptions, deps *Deps) edit.Values {
	exts := make([]string, 0, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts = append(exts, e.Flag())
	}
	vals := edit.Values{
		"force":        opts.Force,
		"update":       opts.Update,
		"pretend":      opts.Pretend,
		"no_config":    opts.NoConfig,
		"verbose":      opts.Verbose,
		"very_verbose": opts.VeryVerbose,
		"log_json":     deps.LogJSON,
		"extensions":   exts,
	}
	strs := map[string]string{
		"name":        opts.Name,
		"package":     opts.Package,
		"module":      opts.Module,
		"description": opts.Description,
		"url":         opts.URL,
		"license":     opts.License,
		"author":      opts.Author,
		"email":       opts.Email,
		"config":      deps.ConfigPath,
		"log_file":    deps.LogFile,
		"log_level":   deps.LogLevel,
	}
	for k, v := range strs {
		if v != "" {
			vals[k] = v
		}
	}
	return vals
}
