// Package utils exposes the ambient helpers shared by lunara commands.
//
// ConfigurationLoader merges embedded defaults, an optional config.yaml and
// LUNARA_* environment overrides through Viper. LoggerFactory builds zap
// loggers from the resolved common.log_level and common.log_format values.
package utils
