package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/talkincode/stockpilot/config"
	"github.com/talkincode/stockpilot/internal/adminweb"
	"github.com/talkincode/stockpilot/internal/app"
	"github.com/talkincode/stockpilot/internal/webserver"
	"go.uber.org/zap"
)

var (
	showHelp   = flag.Bool("h", false, "show help")
	initDb     = flag.Bool("initdb", false, "drop and recreate all tables, then exit")
	configFile = flag.String("c", "stockpilot.yml", "config file path")
	webPort    = flag.Int("p", 0, "override web listen port")
)

func main() {
	flag.Parse()
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	cfg := config.LoadConfig(*configFile)
	if *webPort > 0 {
		cfg.Web.Port = *webPort
	}

	_ = os.MkdirAll(cfg.System.Workdir, 0o755)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initDb {
		application.InitDb()
		fmt.Println("database initialized")
		return
	}

	webserver.Init(application)
	adminweb.Register()

	if err := webserver.Listen(); err != nil {
		zap.S().Fatal(err)
	}
}
