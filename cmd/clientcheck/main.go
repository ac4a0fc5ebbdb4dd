package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/MKhiriev/cra-client/internal/client"
	"github.com/MKhiriev/cra-client/internal/logger"
	"github.com/MKhiriev/cra-client/internal/service"
	"github.com/MKhiriev/cra-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// main resolves kiosk configuration exactly the way the shell does, records a
// startup log run, and prints the resulting bootstrap state as JSON.
//
// Exit codes: 0 when configuration resolved and the server answered, 1 when
// configuration failed, 2 when the server was unreachable.
func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	var (
		noProbe bool
		pretty  bool
	)
	flag.BoolVar(&noProbe, "no-probe", false, "skip the server reachability check")
	flag.BoolVar(&pretty, "pretty", false, "indent the JSON report")
	flag.Parse()

	log := logger.NewLogger("clientcheck")

	shell := client.NewApp(info.BuildVersion(), nil)

	bridge := shell.Bridge()
	if noProbe {
		bridge = service.NewBridgeService(shell.Resolution(), skipProber{}, nil, info.BuildVersion(), log)
	}

	state := bridge.BootstrapState(context.Background())

	var (
		report []byte
		err    error
	)
	if pretty {
		report, err = json.MarshalIndent(state, "", "  ")
	} else {
		report, err = json.Marshal(state)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("encode bootstrap state")
	}

	fmt.Println(string(report))

	switch {
	case !state.Ready:
		os.Exit(1)
	case !state.Reachable:
		os.Exit(2)
	}
}

// skipProber stands in for the real prober under -no-probe.
type skipProber struct{}

func (skipProber) Probe(context.Context, *url.URL) error { return nil }

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
