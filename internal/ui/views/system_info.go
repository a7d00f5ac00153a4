package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath   string
	DBPath       string
	DBExists     bool
	SessionFile  string
	LogPath      string
	TaxRate      string
	Share        string
	DeletePolicy string
	SignedInAs   string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	logPath := data.LogPath
	if logPath == "" {
		logPath = "(disabled)"
	}

	signedIn := pterm.Gray("(not signed in)")
	if data.SignedInAs != "" {
		signedIn = pterm.Green(data.SignedInAs)
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Session File", data.SessionFile},
		{"Log File", logPath},
		{"Tax Rate", data.TaxRate},
		{"Liver Share", data.Share},
		{"Sale Delete Policy", data.DeletePolicy},
		{"Signed In As", signedIn},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
