package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kvdijken/Settings/internal/actions"
	"github.com/kvdijken/Settings/internal/config"
	"github.com/kvdijken/Settings/internal/display"
	"github.com/kvdijken/Settings/internal/logging"
	"github.com/kvdijken/Settings/internal/menu"
	"github.com/kvdijken/Settings/internal/remote"
	"github.com/kvdijken/Settings/internal/ui"
)

// Command flags
var (
	plainOutput  bool
	replayEvents string
	replayJSON   bool
	replayTrace  bool
	serveHost    string
	servePort    int
	advertise    bool
	instanceName string
	remoteAddr   string
	sendTimeout  int
	scanTimeout  int
	forceInit    bool
)

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(initCmd)
}

// session is a menu built from a menu file, ready to be driven.
type session struct {
	path    string
	file    *config.MenuFile
	handler *actions.Set
	grid    *display.Grid
	menu    *menu.Menu
}

// loadSession reads the menu file named by --config, or the default one.
func loadSession() (*session, error) {
	var (
		mf   *config.MenuFile
		path = configPath
		err  error
	)
	if path != "" {
		mf, err = config.Load(path)
	} else {
		if path, err = config.GetMenuPath(); err != nil {
			return nil, err
		}
		mf, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	handlers := actions.NewSet(nil)
	reg, err := mf.Build(handlers)
	if err != nil {
		return nil, fmt.Errorf("failed to build menu: %w", err)
	}

	grid := display.NewGrid(mf.Rows(), mf.Columns())
	m := menu.New(reg, grid, menu.WithVisibleRows(grid.Rows()))

	logging.Debug("Menu loaded",
		zap.String("path", path),
		zap.Int("settings", reg.Len()),
		zap.Int("rows", grid.Rows()),
		zap.Int("columns", grid.Columns()),
	)

	return &session{path: path, file: mf, handler: handlers, grid: grid, menu: m}, nil
}

func (s *session) params() []ui.Param {
	return []ui.Param{
		{Key: "Menu", Value: s.path},
		{Key: "Display", Value: fmt.Sprintf("%d x %d", s.grid.Rows(), s.grid.Columns())},
		{Key: "Settings", Value: strconv.Itoa(s.menu.Registry().Len())},
	}
}

// committed lists every setting with its committed value.
func (s *session) committed() []ui.Param {
	var out []ui.Param
	for _, st := range s.menu.Registry().All() {
		if st.IsSeparator() {
			continue
		}
		value := st.Value()
		if st.Live {
			value += " (live)"
		}
		out = append(out, ui.Param{Key: st.Name, Value: value})
	}
	return out
}

// runCmd opens the interactive menu
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive menu",
	Long: `Open the menu in the terminal.

Keys:
  down, j, +        next row / next value
  up, k, -          previous row / previous value
  enter, space      edit / commit
  esc, backspace    cancel the edit
  q, ctrl+c         quit (a pending edit is rolled back)`,
	Example: `  # Open the default menu (or simply: settings-menu)
  settings-menu run

  # Open a specific menu file with debug logs
  settings-menu run --config ./radio.yaml --log-level debug --log-file menu.log`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	model := ui.NewMenuModel(s.menu, s.grid, ui.MenuModelConfig{
		Command: "settings-menu run",
		Params:  s.params(),
		Applied: s.handler.Applied(),
	})
	if err := ui.Run(model); err != nil {
		return fmt.Errorf("menu failed: %w", err)
	}
	return nil
}

// showCmd prints the menu as it appears on the display
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the menu without interaction",
	Long: `Render the first screen of the menu and list every setting with its
initial value.`,
	Example: `  # Boxed, coloured output
  settings-menu show

  # Plain text, e.g. for diffing
  settings-menu show --plain`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&plainOutput, "plain", false, "Plain text output without colours or boxes")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	s.menu.TakeDisplay()
	defer s.menu.ReleaseDisplay()

	p := ui.NewPrinter(cmd.OutOrStdout()).SetPlain(plainOutput)
	if plainOutput {
		p.PrintGrid(s.grid, display.PanelPalette, false)
		return nil
	}

	p.PrintHeader("Settings Menu", "settings-menu show", s.params()...)
	p.PrintGrid(s.grid, display.PanelPalette, false)
	p.PrintResult(ui.NewSuccessResult("Menu loaded", s.committed()...))
	return nil
}

// replayCmd feeds a list of events to the menu
var replayCmd = &cobra.Command{
	Use:   "replay [events...]",
	Short: "Apply a sequence of events and print the result",
	Long: `Apply events to a fresh menu and print the final screen and values.

Events are up, down, ok and cancel (aliases: next, +, prev, -, accept,
enter, esc, stop), given as arguments or as a comma separated --events list.
"up" is the next row, matching the "next" key of the interactive menu.`,
	Example: `  # Select the second setting, raise its value and commit
  settings-menu replay up ok up ok

  # Same, as one list, printing every step
  settings-menu replay --events "up,ok,up,ok" --trace

  # Final state as JSON
  settings-menu replay up ok up --json`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayEvents, "events", "", "Comma separated list of events")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "Print the final snapshot as JSON")
	replayCmd.Flags().BoolVar(&replayTrace, "trace", false, "Print a line per event")
	replayCmd.Flags().BoolVar(&plainOutput, "plain", false, "Plain text output without colours or boxes")
}

func runReplay(cmd *cobra.Command, args []string) error {
	events, err := menu.ParseEvents(replayEvents + " " + strings.Join(args, " "))
	if err != nil {
		return err
	}

	s, err := loadSession()
	if err != nil {
		return err
	}

	ctrl := remote.NewController(s.menu, s.grid)
	out := cmd.OutOrStdout()

	var snap remote.Snapshot
	for _, ev := range events {
		snap = ctrl.Apply(ev)
		if replayTrace {
			fmt.Fprintln(out, traceLine(snap))
		}
	}
	if len(events) == 0 {
		snap = ctrl.Snapshot()
	}

	if replayJSON {
		return printJSON(out, snap)
	}

	p := ui.NewPrinter(out).SetPlain(plainOutput)
	p.PrintGrid(s.grid, display.PanelPalette, snap.Editing)
	if plainOutput {
		return nil
	}

	result := ui.NewSuccessResult(fmt.Sprintf("%d event(s) applied", len(events)), s.committed()...)
	if snap.Editing {
		result = ui.NewWarningResult("Edit still in progress", s.committed()...)
	}
	if name, value, ok := s.handler.Applied().Last(); ok {
		result.AddDetail("Last applied", name+"="+value)
	}
	p.PrintResult(result)
	return nil
}

func traceLine(snap remote.Snapshot) string {
	mode := "browse"
	if snap.Editing {
		mode = "edit"
	}
	changed := "-"
	if snap.Changed {
		changed = "*"
	}
	return fmt.Sprintf("%-6s %s %-6s row=%-3d top=%-3d %s=%s",
		snap.Event, changed, mode, snap.Selected, snap.Top, snap.Setting, snap.Value)
}

// serveCmd exposes the menu over websocket
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the menu over websocket",
	Long: `Serve the menu on /ws (one event per text frame, a JSON snapshot per
reply) and /snapshot. Every connected client drives the same menu; events
are applied one at a time.

On shutdown a pending edit is rolled back.`,
	Example: `  # Serve on port 8080 and announce over mDNS
  settings-menu serve --port 8080 --advertise

  # Drive it from another terminal
  settings-menu send --addr localhost:8080 up ok up ok`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen address (empty = all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Listen port")
	serveCmd.Flags().BoolVar(&advertise, "advertise", false, "Announce the server over mDNS")
	serveCmd.Flags().StringVar(&instanceName, "instance", "", "mDNS instance name (default: hostname)")
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	ctrl := remote.NewController(s.menu, s.grid)
	srv := remote.New(&remote.Config{
		Host:      serveHost,
		Port:      servePort,
		Advertise: advertise,
		Instance:  instanceName,
	}, ctrl)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Serving %s on %s:%d (ctrl+c to stop)\n", s.path, serveHost, servePort)
	if err := srv.Start(cmd.Context()); err != nil {
		ui.NewPrinter(out).PrintResult(ui.NewFailureResult("Server stopped", err).
			AddDetail("Address", fmt.Sprintf("%s:%d", serveHost, servePort)))
		return err
	}
	return nil
}

// sendCmd drives a running server
var sendCmd = &cobra.Command{
	Use:   "send [events...]",
	Short: "Send events to a running menu server",
	Long: `Connect to a menu server, send the events in order and print the
resulting screen. Without --addr the server is looked up over mDNS.`,
	Example: `  settings-menu send --addr 192.168.1.20:8080 up ok up ok
  settings-menu send --trace down down`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&remoteAddr, "addr", "", "Server address host:port (skips discovery)")
	sendCmd.Flags().BoolVar(&replayTrace, "trace", false, "Print a line per event")
	sendCmd.Flags().IntVar(&sendTimeout, "timeout", 3, "Discovery timeout in seconds")
}

func runSend(cmd *cobra.Command, args []string) error {
	events, err := menu.ParseEvents(strings.Join(args, " "))
	if err != nil {
		return err
	}

	addr, err := getServerAddr(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	snap, err := remote.FetchSnapshot(ctx, addr)
	if err != nil {
		return err
	}

	client, err := remote.Dial(ctx, addr)
	if err != nil {
		return err
	}
	defer client.Close()

	out := cmd.OutOrStdout()
	for _, ev := range events {
		if snap, err = client.Send(ev); err != nil {
			return err
		}
		if replayTrace {
			fmt.Fprintln(out, traceLine(snap))
		}
	}

	for _, line := range snap.Lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

func getServerAddr(ctx context.Context, out io.Writer) (string, error) {
	if remoteAddr != "" {
		return remoteAddr, nil
	}

	fmt.Fprintln(out, "No server address specified, attempting auto-discovery...")
	scanner := remote.NewScanner()
	scanner.Timeout = time.Duration(sendTimeout) * time.Second
	endpoints, err := scanner.Scan(ctx)
	if err != nil {
		return "", fmt.Errorf("discovery failed: %w", err)
	}

	switch len(endpoints) {
	case 0:
		return "", fmt.Errorf("no menu servers found. Use --addr to specify one manually")
	case 1:
		fmt.Fprintf(out, "Found server: %s\n\n", endpoints[0])
		return endpoints[0].Addr(), nil
	default:
		fmt.Fprintf(out, "Found %d servers:\n", len(endpoints))
		for i, ep := range endpoints {
			fmt.Fprintf(out, "%d. %s\n", i+1, ep)
		}
		return "", fmt.Errorf("multiple servers found. Use --addr to specify which one")
	}
}

// discoverCmd lists menu servers on the network
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find menu servers on the network",
	Long:  `Browse mDNS for servers started with 'settings-menu serve --advertise'.`,
	Example: `  settings-menu discover
  settings-menu discover --timeout 10`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&scanTimeout, "timeout", 5, "Scan timeout in seconds")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning for menu servers (timeout: %ds)...\n\n", scanTimeout)

	scanner := remote.NewScanner()
	scanner.Timeout = time.Duration(scanTimeout) * time.Second
	endpoints, err := scanner.Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(endpoints) == 0 {
		fmt.Fprintln(out, "No servers found.")
		return nil
	}

	fmt.Fprintf(out, "Found %d server(s):\n\n", len(endpoints))
	for i, ep := range endpoints {
		fmt.Fprintf(out, "%d. %s\n", i+1, ep.Instance)
		fmt.Fprintf(out, "   Address: %s\n", ep.Addr())
		if v := ep.Metadata["version"]; v != "" {
			fmt.Fprintf(out, "   Version: %s\n", v)
		}
		fmt.Fprintln(out)
	}
	return nil
}

// initCmd writes the default menu file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default menu file",
	Long: `Write the built-in example menu to the menu file location so it can be
edited. An existing file is only replaced after confirmation or with --force.`,
	Example: `  settings-menu init
  settings-menu init --config ./radio.yaml --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file without asking")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.GetMenuPath(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if _, err := os.Stat(path); err == nil && !forceInit {
		if !ui.ConfirmOverwrite(cmd.InOrStdin(), out, path) {
			return nil
		}
	}

	p := ui.NewPrinter(out)
	mf := config.DefaultMenu()
	if err := mf.Save(path); err != nil {
		p.PrintResult(ui.NewFailureResult("Menu not written", err).AddDetail("Path", path))
		return err
	}

	p.PrintResult(ui.NewSuccessResult("Menu written",
		ui.Param{Key: "Path", Value: path},
		ui.Param{Key: "Settings", Value: strconv.Itoa(len(mf.Settings))},
	))
	return nil
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
