package fspath

const hostStyle = StyleWindows
