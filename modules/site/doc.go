// Package site serves the marketing site's static build.
//
// Assets come from a Resolver: LocalResolver reads a directory and
// S3Resolver reads a bucket. Handler applies the caching and single page
// application fallback rules on top.
package site
