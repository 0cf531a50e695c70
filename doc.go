// Package main provides the entry point for the sitepanel application.
// It runs the backend for a small business website: a public storefront
// API (products, categories, banners, site settings) and an admin panel
// API for content management. The application uses the Fiber framework
// for HTTP, gorm for persistence and serves uploaded images from a flat
// upload directory.
package main
