package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/config"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/logger"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/web"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
	defer logger.CloseLogger()

	if err := storage.Init(config.GetDataFolder()); err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func printSetting() {
	fmt.Println("name:", config.GetName())
	fmt.Println("version:", config.GetVersion())
	fmt.Println("listen:", config.GetListen())
	fmt.Println("port:", config.GetPort())
	fmt.Println("data folder:", config.GetDataFolder())
	fmt.Println("log folder:", config.GetLogFolder())
	fmt.Println("log level:", config.GetLogLevel())
	fmt.Println("admin user:", config.GetAdminUsername())
	fmt.Println("snapshot enabled:", config.IsSnapshotEnabled())
}

func main() {
	// Config comes from the environment; a .env next to the binary is
	// honored when present.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "biblioteca",
		Short: "Library loan management panel",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	settingCmd := &cobra.Command{
		Use:   "setting",
		Short: "Print the effective configuration",
		Run: func(cmd *cobra.Command, args []string) {
			printSetting()
		},
	}

	rootCmd.AddCommand(runCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
