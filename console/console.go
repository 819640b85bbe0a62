// Package console implements the interactive ops-console loop: a numbered
// menu over a single database connection, dispatching to per-operation
// handlers that each run one or a few parameterized statements.
package console

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Console owns the session connection and terminal streams for one operator
// session. Handlers are methods; none of them keeps state between calls.
type Console struct {
	db  *sql.DB
	in  *bufio.Scanner
	out io.Writer
}

func New(db *sql.DB) *Console {
	return &Console{
		db:  db,
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
	}
}

func header() {
	color.Cyan(strings.Repeat("=", 70))
	color.Yellow("  HAWKINS NATIONAL LAB — OPS CONSOLE v4.2")
	color.Green("  Interdimensional Anomaly Monitoring System — CLASSIFIED")
	color.Cyan(strings.Repeat("=", 70))
	fmt.Println()
}

func bootSequence() {
	header()
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " [BOOT] Initializing UpsideDown frequency scanner..."
	_ = s.Color("magenta")
	s.Start()
	time.Sleep(750 * time.Millisecond)
	s.Stop()
	color.Magenta("[OK] Psychokinetic telemetry link stable.")
	color.Yellow("[WARN] Portal C shows elevated distortion.")
	fmt.Println()
}

// Run drives the menu loop until the operator quits. The threat score banner
// is recomputed from the database on every render.
func (c *Console) Run() {
	bootSequence()
	for {
		score, level := c.dimensionalThreatScore()
		color.Blue("[Main Menu] Select function (DTS %d · %s):", score, level)
		fmt.Fprintln(c.out, " --- DASHBOARD / READ / ANALYTICS ---")
		fmt.Fprintln(c.out, " 1) Portal Stability Scanner")
		fmt.Fprintln(c.out, " 2) Entity Threat Analyzer")
		fmt.Fprintln(c.out, " 3) Reality Disturbance Map")
		fmt.Fprintln(c.out, " 4) Psychic Activity Dashboard")
		fmt.Fprintln(c.out, " 5) Temporal Breach Timeline")
		fmt.Fprintln(c.out, " 6) Global Search")
		fmt.Fprintln(c.out, " --- CREATE ---")
		fmt.Fprintln(c.out, " 7) Insert new Event (CREATE)")
		fmt.Fprintln(c.out, " 8) Create Person (CREATE)")
		fmt.Fprintln(c.out, " 9) Create Artifact (CREATE)")
		fmt.Fprintln(c.out, "10) Create Entity (CREATE)")
		fmt.Fprintln(c.out, "11) Create Portal (CREATE)")
		fmt.Fprintln(c.out, "12) Create Report (CREATE)")
		fmt.Fprintln(c.out, "13) Create Experiment (CREATE)")
		fmt.Fprintln(c.out, " --- LINK / UNLINK ---")
		fmt.Fprintln(c.out, "14) Link Event to Entity (appearance)")
		fmt.Fprintln(c.out, "15) Unlink Event from Entity")
		fmt.Fprintln(c.out, "16) Link Artifact to Event")
		fmt.Fprintln(c.out, "17) Unlink Artifact from Event")
		fmt.Fprintln(c.out, "18) Add Victim to Event")
		fmt.Fprintln(c.out, "19) Remove Victim from Event")
		fmt.Fprintln(c.out, " --- UPDATE ---")
		fmt.Fprintln(c.out, "20) Update Event (Outcome/Severity/Portal/Location)")
		fmt.Fprintln(c.out, "21) Update Portal Status / Links")
		fmt.Fprintln(c.out, "22) Update Person (Role/Affiliation/Status)")
		fmt.Fprintln(c.out, "23) Update Entity (Threat_Level)")
		fmt.Fprintln(c.out, "24) Update Artifact (Anomaly_Level/Found_At)")
		fmt.Fprintln(c.out, " --- DELETE / ARCHIVE ---")
		fmt.Fprintln(c.out, "25) Archive Event")
		fmt.Fprintln(c.out, "26) Archive Person")
		fmt.Fprintln(c.out, "27) Delete Artifact (hard delete) — confirm")
		fmt.Fprintln(c.out, " --- ADMIN / UTIL ---")
		fmt.Fprintln(c.out, "28) Recompute DTS / Run maintenance")
		fmt.Fprintln(c.out, " q) Quit")

		choice := strings.ToLower(c.prompt("Choice> "))
		switch choice {
		case "1":
			c.portalStabilityScanner()
		case "2":
			c.entityThreatAnalyzer()
		case "3":
			c.realityDisturbanceMap()
		case "4":
			c.psychicActivityDashboard()
		case "5":
			c.temporalBreachTimeline()
		case "6":
			c.globalSearch()
		case "7":
			c.insertEvent()
		case "8":
			c.createPerson()
		case "9":
			c.createArtifact()
		case "10":
			c.createEntity()
		case "11":
			c.createPortal()
		case "12":
			c.createReport()
		case "13":
			c.createExperiment()
		case "14":
			c.linkEventEntity()
		case "15":
			c.unlinkEventEntity()
		case "16":
			c.linkArtifactEvent()
		case "17":
			c.unlinkArtifactEvent()
		case "18":
			c.addVictimToEvent()
		case "19":
			c.removeVictimFromEvent()
		case "20":
			c.updateEvent()
		case "21":
			c.updatePortalStatus()
		case "22":
			c.updatePerson()
		case "23":
			c.updateEntity()
		case "24":
			c.updateArtifact()
		case "25":
			c.archiveEvent()
		case "26":
			c.archivePerson()
		case "27":
			c.deleteArtifact()
		case "28":
			c.recomputeDTS()
		case "q":
			color.Green("Exiting console... Stay vigilant.")
			return
		default:
			color.Red("Unknown command. Try again.")
		}
	}
}
