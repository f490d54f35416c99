// Package photo reads capture metadata from site photos.
//
// Technicians rarely caption photos with the time they were taken, but the
// camera records it. Annotate fills in Photo.TakenAt from the EXIF
// DateTimeOriginal tag so the photo pages show when each photo was taken.
// Photos that cannot be read are left as they are; a missing timestamp is
// never an error.
package photo
