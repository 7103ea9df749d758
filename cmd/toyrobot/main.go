package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/toyrobot/internal/app"
	"github.com/vinser/toyrobot/internal/embeddata"
	"github.com/vinser/toyrobot/internal/flags"
	"github.com/vinser/toyrobot/internal/logger"
	"github.com/vinser/toyrobot/internal/model/tips"
	"github.com/vinser/toyrobot/internal/state"
	"github.com/vinser/toyrobot/internal/table"
)

var version = "dev"

func main() {
	fl := flags.Parse()

	closeLog, err := logger.Setup(logger.Config{Dir: fl.LogDir, Debug: fl.Debug})
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	lg := logger.L()

	st := getState(fl)
	t, err := loadTable(st.TablePath)
	switch {
	case err != nil && fl.Table != "":
		log.Fatal(err)
	case err != nil:
		// Fall back to the built-in table when the saved one is gone.
		lg.Warn("table.load", "path", st.TablePath, "err", err)
		st.TablePath = ""
		if t, err = loadTable(""); err != nil {
			log.Fatal(err)
		}
	}
	logTable(lg, t)
	lg.Info("app.start", "version", version, "session", st.SessionID, "table", st.TablePath, "router", st.Router, "batch", fl.Batch)

	help, err := embeddata.ReadHelpMD()
	if err != nil {
		log.Fatal(err)
	}
	cfg := app.Config{
		Table:  t,
		State:  st,
		Resume: fl.Resume,
		Help:   help,
		Tips:   loadTips(),
		Logger: lg,
	}

	if fl.Batch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runBatch(ctx, cfg); err != nil {
			lg.Error("app.batch", "err", err)
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(app.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		lg.Error("app.run", "err", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadTable reads the table config from path, or the built-in one when path is empty.
func loadTable(path string) (*table.Table, error) {
	if path != "" {
		return table.Load(path)
	}
	data, err := embeddata.ReadTableYAML()
	if err != nil {
		return nil, err
	}
	return table.Parse(data)
}

// loadTips returns the embedded tips. The console falls back to a single tip when there are none.
func loadTips() []string {
	data, err := embeddata.ReadTips()
	if err != nil {
		logger.L().Warn("tips.load", "err", err)
		return nil
	}
	msgs, err := tips.Parse(data)
	if err != nil {
		logger.L().Warn("tips.load", "err", err)
	}
	return msgs
}

// getState loads saved settings, or fresh ones on -reset, and applies the
// command-line overrides on top.
func getState(fl *flags.Flags) *state.State {
	var st *state.State
	if fl.Reset {
		st = state.New()
	} else {
		st = state.Load()
	}
	if fl.IsCustom("router") {
		st.Router = fl.Router
	}
	if fl.IsCustom("sprite-size") {
		st.SpriteSize = fl.Sprite
	}
	if fl.IsCustom("table") {
		st.TablePath = fl.Table
	}
	if fl.Reset {
		if err := st.Save(); err != nil {
			logger.L().Warn("state.reset", "err", err)
		}
	}
	return st
}

// logTable writes the active table config at debug level.
func logTable(lg *slog.Logger, t *table.Table) {
	data, err := table.Marshal(t)
	if err != nil {
		lg.Warn("table.marshal", "err", err)
		return
	}
	lg.Debug("table.config", "yaml", string(data))
}
