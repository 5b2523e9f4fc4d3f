package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/Demivan/fluentnet/fluent"
	"github.com/Demivan/fluentnet/fluent/parser"
)

var log = commonlog.GetLogger("ftl.check")

func newCheckCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Parse .ftl files and report entries that failed to parse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)

			files, err := collectFiles(args)
			if err != nil {
				return err
			}

			broken := 0
			for _, file := range files {
				// Spans locate the reported diagnostics in the source
				resource, err := fluent.LoadResourceFile(file, parser.WithSpans())
				if err != nil {
					return err
				}

				junk := resource.Junk()
				if len(junk) == 0 {
					log.Debugf("%s: ok", file)
					continue
				}

				broken++
				for _, entry := range junk {
					for _, annotation := range entry.Annotations {
						log.Errorf("%s: [%s] %s at byte %d", file, annotation.Code, annotation.Message, annotation.Span.Start)
					}
				}
			}

			if broken > 0 {
				return fmt.Errorf("%d of %d files contain junk", broken, len(files))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")

	return cmd
}

func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrap(err, "stat path")
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".ftl") {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, "walk directory")
		}
	}
	return files, nil
}
