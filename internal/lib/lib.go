// Package lib groups the infrastructure clients the services build on:
// the image file store, the asynq job queue and the Resend e-mail client.
package lib
