// Package confloader provides configuration loading for RoomStore.
//
// It uses Koanf to merge configuration from multiple sources with
// priority: Env > File > Default, and fsnotify to watch the config file
// for live changes.
package confloader
