// Package browser opens URLs with the OS default handler.
package browser
