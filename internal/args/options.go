package args

type CallbackOption func(string) error

var General struct {
	Verbose               []bool         `short:"v" long:"verbose"             env:"TRILOBYTE_VERBOSITY"           description:"Log more. Repeat for even more."`
	ConfigurationFile     CallbackOption `short:"c" long:"config"              env:"TRILOBYTE_CONFIG"              description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string
	LogFile               *string `short:"l" long:"log-file"            env:"TRILOBYTE_LOG_FILE"            description:"Append log output to this file instead of stderr." default:"-"`
	LogFormat             string  `short:"f" long:"log-format"          env:"TRILOBYTE_LOG_FORMAT"          description:"Log format." choice:"text" choice:"json" default:"text"`
	LogColor              string  `short:"C" long:"log-color"           env:"TRILOBYTE_LOG_COLOR"           description:"Color the log output: yes, no or auto." choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto"`
	LogFullTimestamp      bool    `          long:"log-full-timestamp"  env:"TRILOBYTE_LOG_FULL_TIMESTAMP"  description:"Log full timestamps instead of elapsed time."`
	LogReportCaller       bool    `          long:"log-report-caller"   env:"TRILOBYTE_LOG_REPORT_CALLER"   description:"Annotate log entries with the calling source line."`
}
