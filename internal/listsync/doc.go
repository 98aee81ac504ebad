// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package listsync keeps a rendered list of notes or entries in step with a
// paginated server collection.
//
// A [Cursor] tracks the next page of one collection. An [Engine] fetches
// pages through a [Collection], renders them through a [Presenter] and
// applies the local effect of confirmed create, update and delete mutations.
// A [FillController] drives the Engine: it backfills pages eagerly until the
// [Viewport] overflows, then loads further pages only when the loading
// indicator becomes visible.
//
// Failures are reported to a notify.Sink at the call site and returned to the
// caller; nothing is retried automatically.
package listsync
