// Package twitter resolves account references through the Twitter v1.1
// users/lookup endpoint.
//
// Requests are signed with OAuth 1.0a using the four configured secrets.
// References are split into chunks of at most BatchSize (the endpoint accepts
// 100 per call), sent one after the other and paced by a rate limiter.
// A 404 carrying error code 17 means none of the chunk's accounts exist and
// yields an empty result rather than an error.
package twitter
