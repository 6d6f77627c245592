package commands

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/licensedesk/licensedesk/internal/license"
	"github.com/licensedesk/licensedesk/internal/logging"
	"github.com/licensedesk/licensedesk/internal/sound"
	"github.com/licensedesk/licensedesk/internal/types"
	"github.com/licensedesk/licensedesk/internal/ui"
)

// verbAliases maps short forms to canonical verbs.
var verbAliases = map[string]string{
	"h":    "help",
	"t":    "theme",
	"anim": "animate",
	"u":    "upgrade",
	"calc": "calculate",
	"c":    "calculate",
	"r":    "refresh",
	"e":    "export",
	"s":    "status",
	"snd":  "sound",
}

var exportTargets = []string{string(ExportCSV), string(ExportClipboard)}

// resolveVerb maps a lowercased token to a canonical verb of the variant.
func (d *Dispatcher) resolveVerb(token string) (string, bool) {
	verb := token
	if canonical, ok := verbAliases[token]; ok {
		verb = canonical
	}
	return verb, d.variant.HasVerb(verb)
}

// execute interprets one command line and records it. Every call appends
// exactly one history entry, after any wipe done by clear.
func (d *Dispatcher) execute(raw string) {
	fields := strings.Fields(strings.ToLower(raw))

	var result string
	verb, ok := "", false
	if len(fields) > 0 {
		verb, ok = d.resolveVerb(fields[0])
	}
	if ok {
		result = d.run(verb, fields[1:])
	} else {
		result = d.unknownCommand(raw, fields)
	}

	entry := HistoryEntry{Command: raw, Timestamp: d.now(), Result: result}
	d.history.Append(entry)
	d.buffer = ""
	d.highlight = -1

	d.effect.Entry = &entry
	if d.effect.Sound == "" {
		d.effect.Sound = sound.ActionConfirm
	}
	logging.Debug("command executed", "command", raw, "verb", verb, "result", result)
}

func (d *Dispatcher) run(verb string, args []string) string {
	switch verb {
	case "help":
		return "Available commands: " + strings.Join(d.variant.Verbs, ", ")
	case "theme":
		return d.runTheme(args)
	case "animate":
		return d.runAnimate(args)
	case "upgrade":
		return d.runUpgrade(args)
	case "calculate":
		d.status(types.MessageTypeSuccess, "Estimates calculated: %s", license.Summary().GrossTotal)
		return "Calculating estimates for license changes..."
	case "refresh":
		d.status(types.MessageTypeLoading, "Refreshing license data...")
		d.effect.Refresh = true
		return "Refreshing license data..."
	case "export":
		return d.runExport(args)
	case "clear":
		d.history.Clear()
		d.effect.Sound = sound.ActionConfirmFinal
		return "Command history cleared"
	case "status":
		result := fmt.Sprintf("System status: All services operational | Theme: %s (%s)", d.theme.Name, d.theme.Season)
		if d.variant.AutoMode {
			result += " | Auto: " + onOff(d.autoMode)
		}
		return result
	case "auto":
		d.toggleAuto()
		return "Auto mode " + enabledDisabled(d.autoMode)
	case "sound":
		return d.runSound(args)
	}
	return d.unknownCommand(verb, []string{verb})
}

func (d *Dispatcher) runTheme(args []string) string {
	var a themeArgs
	if err := ParseArgs(&a, args); err != nil {
		return usageError(err, "theme", &a)
	}
	available := strings.Join(d.variant.Themes, ", ")
	if a.Name == "" {
		return fmt.Sprintf("Current theme: %s. Available: %s", d.theme.Name, available)
	}
	if !slices.Contains(d.variant.Themes, a.Name) {
		return fmt.Sprintf("Unknown theme: %s. Available: %s", a.Name, available)
	}
	d.switchTheme(a.Name)
	return "Theme switched to " + ui.GetTheme(a.Name).Name
}

func (d *Dispatcher) runAnimate(args []string) string {
	var a animateArgs
	if err := ParseArgs(&a, args); err != nil {
		return usageError(err, "animate", &a)
	}
	season := a.Season
	if season == "" {
		season = d.theme.Season
	} else if !slices.Contains(d.variant.Seasons, season) {
		return fmt.Sprintf("Unknown season: %s. Available: %s", season, strings.Join(d.variant.Seasons, ", "))
	}
	d.effect.Animation = season
	return fmt.Sprintf("Triggered %s animation", season)
}

func (d *Dispatcher) runUpgrade(args []string) string {
	var a upgradeArgs
	if err := ParseArgs(&a, args); err != nil {
		return usageError(err, "upgrade", &a)
	}
	if a.Count > 0 {
		d.addLicenses = a.Count
	}
	d.status(types.MessageTypeSuccess, "License upgrade initiated")
	return fmt.Sprintf("Upgrading licenses by %d units...", d.addLicenses)
}

func (d *Dispatcher) runExport(args []string) string {
	var a exportArgs
	if err := ParseArgs(&a, args); err != nil {
		return usageError(err, "export", &a)
	}
	switch ExportTarget(a.Target) {
	case ExportCSV:
		d.effect.Export = ExportCSV
		d.status(types.MessageTypeLoading, "Exporting license data...")
		return "Exporting license data to CSV..."
	case ExportClipboard:
		d.effect.Export = ExportClipboard
		d.status(types.MessageTypeLoading, "Exporting license data...")
		return "Copying license data to clipboard..."
	}
	return fmt.Sprintf("Unknown export target: %s. Available: %s", a.Target, strings.Join(exportTargets, ", "))
}

func (d *Dispatcher) runSound(args []string) string {
	var a soundArgs
	if err := ParseArgs(&a, args); err != nil {
		return usageError(err, "sound", &a)
	}
	available := strings.Join(d.soundThemes, ", ")
	if a.Name == "" {
		return fmt.Sprintf("Current sound theme: %s. Available: %s", d.soundTheme, available)
	}
	if !slices.Contains(d.soundThemes, a.Name) {
		return fmt.Sprintf("Unknown sound theme: %s. Available: %s", a.Name, available)
	}
	d.soundTheme = a.Name
	d.effect.SoundTheme = a.Name
	return "Sound theme switched to " + a.Name
}

func (d *Dispatcher) unknownCommand(raw string, fields []string) string {
	result := fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", raw)
	if len(fields) > 0 {
		if verb, ok := closestVerb(fields[0], d.variant.Verbs); ok {
			result += fmt.Sprintf(" Did you mean '%s'?", verb)
		}
	}
	return result
}

// usageError formats an argument error as a result line.
func usageError(err error, verb string, args any) string {
	msg := []rune(err.Error())
	msg[0] = unicode.ToUpper(msg[0])
	return fmt.Sprintf("%s. Usage: %s%s", string(msg), verb, ArgPattern(args))
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

func enabledDisabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

var verbArgs = map[string]any{
	"theme":   themeArgs{},
	"animate": animateArgs{},
	"upgrade": upgradeArgs{},
	"export":  exportArgs{},
	"sound":   soundArgs{},
}

// ArgHint returns the argument pattern of the verb in the buffer, e.g.
// " [name]" after "theme". Empty once an argument has been typed.
func (d *Dispatcher) ArgHint() string {
	fields := strings.Fields(strings.ToLower(d.buffer))
	if len(fields) != 1 {
		return ""
	}
	verb, ok := d.resolveVerb(fields[0])
	if !ok {
		return ""
	}
	return ArgPattern(verbArgs[verb])
}
