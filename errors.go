/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"strings"
)

// rejectKind classifies the user-recoverable failures a connection can be
// handed back. These are always targeted replies to the offending connection,
// never broadcast, and never fatal to the session.
type rejectKind string

const (
	rejectInvalidName     rejectKind = "invalid_name"
	rejectNameTaken       rejectKind = "name_taken"
	rejectInvalidQuestion rejectKind = "invalid_question"
	rejectQuestionActive  rejectKind = "question_active"
	rejectNoQuestion      rejectKind = "no_active_question"
	rejectQuestionClosed  rejectKind = "question_closed"
	rejectUnknownOption   rejectKind = "unknown_option"
	rejectAlreadyAnswered rejectKind = "already_answered"
)

func newPage(title, body string) string {
	var htmlBody strings.Builder

	htmlBody.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	htmlBody.WriteString(getFavicon())
	htmlBody.WriteString(`<style>`)
	htmlBody.WriteString(`html,body,a{display:block;height:100%;width:100%;text-decoration:none;color:inherit;cursor:auto;}</style>`)
	htmlBody.WriteString(fmt.Sprintf("<title>%s</title></head>", title))
	htmlBody.WriteString(fmt.Sprintf("<body><a href=\"/\">%s</a></body></html>", body))

	return htmlBody.String()
}
