// Package presenter builds the frame drawn for the application's current
// mode. Presenters read state and never change it.
package presenter
