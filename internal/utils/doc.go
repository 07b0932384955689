// Package utils houses the configuration and logging plumbing shared by the
// CLI commands: a Viper-backed ConfigurationLoader, a zap LoggerFactory, and
// small context and writer helpers.
package utils
