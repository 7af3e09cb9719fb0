// Command lnkdump reads a Windows Shell Link file and prints a
// human-readable summary: target path, show command, hotkey translation,
// a few behavioral flags, and the size of any trailing extra-data span.
// Timestamps are not printed.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/bgrewell/usage"
	"github.com/fatih/color"
	"github.com/theckman/yacspin"
	"golang.org/x/term"

	lnk "github.com/captain-woof/lnk-manipulator"
	"github.com/captain-woof/lnk-manipulator/internal/buildinfo"
	"github.com/captain-woof/lnk-manipulator/pkg/logging"
	"github.com/captain-woof/lnk-manipulator/pkg/option"
)

type summary struct {
	TargetPath string   `json:"target_path"`
	HotKey     string   `json:"hot_key,omitempty"`
	ShowCmd    uint32   `json:"show_command"`
	Flags      []string `json:"flags,omitempty"`
	ExtraBytes int      `json:"extra_data_bytes"`
}

func main() {
	u := usage.NewUsage(
		usage.WithApplicationVersion(buildinfo.Version),
		usage.WithApplicationName("lnkdump"),
		usage.WithApplicationDescription("lnkdump reads a .lnk file and prints its target, show command, hotkey, flags and extra-data size in a human-readable or JSON form."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	strict := u.AddBooleanOption("", "strict", false, "Fail on header-size or CLSID mismatches instead of warning", "", nil)
	asJSON := u.AddBooleanOption("", "json", false, "Print the summary as JSON", "", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Log each section as it's parsed", "", nil)
	path := u.AddArgument(1, "lnk-path", "Path to the .lnk file to read, or - for stdin", "")
	extraLimit := u.AddArgument(2, "extra-data-limit", "Cap the retained ExtraData span in bytes (0 or omitted = unlimited)", "0")

	if !u.Parse() {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}
	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	var in io.Reader = os.Stdin
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if path != nil && *path != "" && *path != "-" {
		f, err := os.Open(*path)
		if err != nil {
			u.PrintError(err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	var spinner *yacspin.Spinner
	if interactive {
		spinner, _ = yacspin.New(yacspin.Config{
			Frequency:     100 * time.Millisecond,
			CharSet:       yacspin.CharSets[9],
			Suffix:        " reading link",
			StopCharacter: "✓",
			StopColors:    []string{"fgGreen"},
		})
		if spinner != nil {
			_ = spinner.Start()
		}
	}

	buf, err := io.ReadAll(in)
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		u.PrintError(fmt.Errorf("reading input: %w", err))
		os.Exit(1)
	}

	opts := []option.Option{option.WithLenientHeader(!*strict)}
	if extraLimit != nil && *extraLimit != "" {
		if n, err := strconv.Atoi(*extraLimit); err == nil && n > 0 {
			opts = append(opts, option.WithMaxExtraData(n))
		}
	}
	if verbose != nil && *verbose {
		level := logging.LevelTrace
		opts = append(opts, lnk.WithLogger(logging.NewSimpleLogger(os.Stderr, level, interactive)))
	}

	sl, err := lnk.Parse(buf, opts...)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}

	s := summarize(sl)
	if asJSON != nil && *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(s)
		return
	}
	printHuman(s, interactive)
}

func summarize(sl *lnk.ShellLink) summary {
	s := summary{
		TargetPath: sl.TargetPath(),
		HotKey:     sl.Header.HotKey.String(),
		ShowCmd:    uint32(sl.Header.ShowCommand),
		ExtraBytes: len(sl.ExtraData),
	}
	lf := sl.Header.LinkFlags
	if lf.HasLinkTargetIDList() {
		s.Flags = append(s.Flags, "HasLinkTargetIDList")
	}
	if lf.HasLinkInfo() {
		s.Flags = append(s.Flags, "HasLinkInfo")
	}
	if lf.IsUnicode() {
		s.Flags = append(s.Flags, "IsUnicode")
	}
	if lf.RunAsUser() {
		s.Flags = append(s.Flags, "RunAsUser")
	}
	return s
}

func printHuman(s summary, useColor bool) {
	label := fmt.Sprintf
	if useColor {
		label = color.New(color.FgCyan).SprintfFunc()
	}
	fmt.Printf("%s %s\n", label("Target:"), s.TargetPath)
	fmt.Printf("%s %d\n", label("Show command:"), s.ShowCmd)
	if s.HotKey != "" {
		fmt.Printf("%s %s\n", label("Hotkey:"), s.HotKey)
	}
	if len(s.Flags) > 0 {
		fmt.Printf("%s %v\n", label("Flags:"), s.Flags)
	}
	fmt.Printf("%s %d bytes\n", label("Extra data:"), s.ExtraBytes)
}
