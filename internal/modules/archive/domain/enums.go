//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// AttachmentKind represents how an attachment is displayed
// ENUM(image,file)
type AttachmentKind string

// PayloadFormat represents the encoding of the messages payload
// ENUM(jsonp,json)
type PayloadFormat string

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string
