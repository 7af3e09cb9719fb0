// Command lnkcreate builds a minimal Windows Shell Link file from a target
// path and a handful of optional fields, demonstrating the library's
// default-constructor-then-serialize lifecycle.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bgrewell/usage"

	lnk "github.com/captain-woof/lnk-manipulator"
	"github.com/captain-woof/lnk-manipulator/internal/buildinfo"
	"github.com/captain-woof/lnk-manipulator/pkg/header"
	"github.com/captain-woof/lnk-manipulator/pkg/linkinfo"
	"github.com/captain-woof/lnk-manipulator/pkg/stringdata"
)

func main() {
	u := usage.NewUsage(
		usage.WithApplicationVersion(buildinfo.Version),
		usage.WithApplicationName("lnkcreate"),
		usage.WithApplicationDescription("lnkcreate builds a minimal .lnk file pointing at a local target path."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	target := u.AddArgument(1, "target", "Local path the shortcut points at, e.g. C:\\Program Files\\App\\app.exe", "")
	output := u.AddArgument(2, "output", "Path to write the .lnk file to", "")
	arguments := u.AddArgument(3, "arguments", "Command-line arguments passed to the target", "")
	workingDir := u.AddArgument(4, "working-dir", "Working directory the target is launched from", "")
	iconLocation := u.AddArgument(5, "icon", "Path to the icon resource, e.g. C:\\Windows\\System32\\shell32.dll", "")
	showCommand := u.AddArgument(6, "show-command", "SW_SHOWNORMAL (1), SW_SHOWMAXIMIZED (3) or SW_SHOWMINNOACTIVE (7)", "1")

	if !u.Parse() {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}
	if *help {
		u.PrintUsage()
		os.Exit(0)
	}
	if target == nil || *target == "" {
		u.PrintError(fmt.Errorf("target is required"))
		os.Exit(1)
	}
	if output == nil || *output == "" {
		u.PrintError(fmt.Errorf("output is required"))
		os.Exit(1)
	}

	sl := lnk.New()

	if showCommand != nil && *showCommand != "" {
		sc, err := strconv.Atoi(*showCommand)
		if err != nil {
			u.PrintError(fmt.Errorf("invalid show-command %q: %w", *showCommand, err))
			os.Exit(1)
		}
		sl.Header.ShowCommand = header.ShowCommand(sc)
	}

	// A LinkInfo without a CommonNetworkRelativeLink carries no
	// CommonPathSuffix on the wire, so the whole local path goes into
	// LocalBasePath.
	sl.LinkInfo = &linkinfo.LinkInfo{
		VolumeID: &linkinfo.VolumeID{
			DriveType: linkinfo.DriveFixed,
		},
		LocalBasePath: *target,
	}

	sd := &stringdata.StringData{}
	if arguments != nil && *arguments != "" {
		sd.Arguments = arguments
	}
	if workingDir != nil && *workingDir != "" {
		sd.WorkingDir = workingDir
	}
	if iconLocation != nil && *iconLocation != "" {
		sd.IconLocation = iconLocation
	}
	if sd.Arguments != nil || sd.WorkingDir != nil || sd.IconLocation != nil {
		sl.StringData = sd
	}

	out, err := lnk.Serialize(sl)
	if err != nil {
		u.PrintError(fmt.Errorf("serializing link: %w", err))
		os.Exit(1)
	}

	if err := os.WriteFile(*output, out, 0o644); err != nil {
		u.PrintError(fmt.Errorf("writing %s: %w", *output, err))
		os.Exit(1)
	}
}

// splitTarget divides a local path at its last backslash into the directory
// and the final path component. A path with no backslash is returned whole
// as the final component.
func splitTarget(target string) (base, suffix string) {
	idx := -1
	for i := len(target) - 1; i >= 0; i-- {
		if target[i] == '\\' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", target
	}
	return target[:idx], target[idx+1:]
}
