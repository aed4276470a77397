/*
Package observability provides tools for monitoring document lifecycle
activity.

Workspace change listeners run synchronously under the workspace lock,
so they must return quickly and must not call back into the workspace.
The Recorder bridges that constraint: it counts events inline and fans
them out to buffered channels that slower consumers can drain at their
own pace.
*/
package observability
